package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeseo/config"
)

// RegisterVideoRoutes registers the metadata preview endpoint.
func RegisterVideoRoutes(r *gin.Engine, d *Deps) {
	r.GET("/api/video", func(c *gin.Context) { handleVideoPreview(c, d) })
}

// handleVideoPreview runs the extraction step alone, so the UI can show the
// video card before the user commits to a full analysis.
func handleVideoPreview(c *gin.Context, d *Deps) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.ExtractTimeout)
	defer cancel()

	meta, err := d.Extractor.Fetch(ctx, url)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meta)
}
