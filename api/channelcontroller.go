package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tubeseo/config"
)

// RegisterChannelRoutes registers the channel uploads listing.
func RegisterChannelRoutes(r *gin.Engine, d *Deps) {
	r.GET("/api/channel", func(c *gin.Context) { handleChannelUploads(c, d) })
}

// handleChannelUploads lists a channel's recent uploads so users can pick
// videos to analyze without pasting URLs one by one.
func handleChannelUploads(c *gin.Context, d *Deps) {
	channelID := c.Query("channel_id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel_id query parameter is required"})
		return
	}

	count := config.ChannelFeedMax
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		if n < count {
			count = n
		}
	}

	refs, err := d.FetchUploads(channelID, count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"channel_id": channelID,
		"count":      len(refs),
		"videos":     refs,
	})
}
