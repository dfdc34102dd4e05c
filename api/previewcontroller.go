package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"tubeseo/thumbnail"
	"tubeseo/types"
)

// RegisterPreviewRoutes registers the local thumbnail preview endpoint.
func RegisterPreviewRoutes(r *gin.Engine) {
	r.POST("/api/preview", handlePreview)
}

// handlePreview renders a concept to a local preview card and serves the PNG.
// This is the image path for installs without an OpenAI key; it needs an
// ffmpeg binary on PATH.
func handlePreview(c *gin.Context) {
	var concept types.ThumbnailConcept
	if err := c.ShouldBindJSON(&concept); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if concept.OverlayText == "" && concept.VisualIdea == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "concept needs overlay_text or visual_idea"})
		return
	}

	f, err := os.CreateTemp("", "tubeseo-preview-*.png")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := f.Name()
	f.Close()
	defer os.Remove(out)

	if err := thumbnail.RenderPreview(concept, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.File(out)
}
