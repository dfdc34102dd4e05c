package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeseo/config"
	"tubeseo/seo"
	"tubeseo/types"
)

// RegisterAnalyzeRoutes registers the main analysis endpoint.
func RegisterAnalyzeRoutes(r *gin.Engine, d *Deps) {
	r.POST("/api/analyze", func(c *gin.Context) { handleAnalyze(c, d) })
}

// AnalyzeRequest is the full pipeline input: video, language, backend choice.
type AnalyzeRequest struct {
	URL           string `json:"url" binding:"required"`
	Language      string `json:"language"`
	Backend       string `json:"backend"`
	Model         string `json:"model"`
	GenerateImage bool   `json:"generate_image"`
}

// AnalyzeResponse pairs the extracted metadata with the SEO recommendations.
// Warnings report non-fatal degradations (missing transcript, fallbacks).
type AnalyzeResponse struct {
	Metadata *types.VideoMetadata `json:"metadata"`
	Result   *types.SeoResult     `json:"result"`
	Warnings []string             `json:"warnings,omitempty"`
}

func handleAnalyze(c *gin.Context, d *Deps) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Language == "" {
		req.Language = "English"
	}
	if !config.IsSupportedLanguage(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + req.Language})
		return
	}
	if req.Backend == "" {
		req.Backend = config.BackendOpenAI
	}

	provider, err := d.NewProvider(req.Backend, req.Model)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.AnalyzeTimeout)
	defer cancel()

	meta, err := d.Extractor.Fetch(ctx, req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var warnings []string
	if !meta.TranscriptPresent {
		warnings = append(warnings, "transcript unavailable; recommendations based on metadata only")
	}

	analyzer := seo.NewAnalyzer(provider, d.Refiner)
	result, analyzeWarnings, err := analyzer.Analyze(ctx, meta, req.Language)
	if err != nil {
		if errors.Is(err, seo.ErrBackendUnreachable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	warnings = append(warnings, analyzeWarnings...)

	if req.GenerateImage {
		warnings = append(warnings, attachImages(ctx, d, result, meta)...)
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Metadata: meta,
		Result:   result,
		Warnings: warnings,
	})
}

// attachImages forwards the first concept to the image API. Failure never
// affects the rest of the result.
func attachImages(ctx context.Context, d *Deps, result *types.SeoResult, meta *types.VideoMetadata) []string {
	if d.Thumbnails == nil {
		return []string{"image generation not configured; thumbnail concepts are text only"}
	}
	if len(result.Thumbnails) == 0 {
		return nil
	}

	imgCtx, cancel := context.WithTimeout(ctx, config.ImageTimeout)
	defer cancel()

	url, err := d.Thumbnails.GenerateImage(imgCtx, result.Thumbnails[0], meta.Title, meta.Platform)
	if err != nil {
		log.Printf("api: image generation failed: %v", err)
		return []string{"thumbnail image generation failed; concept text returned without an image"}
	}
	result.Thumbnails[0].ImageURL = url
	return nil
}
