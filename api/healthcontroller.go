package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"tubeseo/config"
	"tubeseo/seo"
)

// RegisterHealthRoutes registers the health/readiness endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/api/health", handleHealth)
}

// handleHealth reports backend availability: whether the cloud key is
// configured and whether the local Ollama endpoint answers, with its installed
// models (the same check the desktop UI sidebar performed).
func handleHealth(c *gin.Context) {
	ollama := gin.H{"reachable": false}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	baseURL := config.GetEnvOrDefault("OLLAMA_URL", config.DefaultOllamaURL)
	if models, err := seo.NewOllamaProvider(baseURL, "").ListModels(ctx); err == nil {
		ollama = gin.H{"reachable": true, "models": models}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"backends": gin.H{
			"openai": gin.H{"configured": os.Getenv("OPENAI_API_KEY") != ""},
			"ollama": ollama,
		},
	})
}
