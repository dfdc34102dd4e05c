package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"tubeseo/extractor"
	"tubeseo/seo"
	"tubeseo/thumbnail"
	"tubeseo/types"
)

// MetadataFetcher resolves a video URL into metadata plus transcript.
// *extractor.Service is the production implementation.
type MetadataFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*types.VideoMetadata, error)
}

// Deps holds the services the controllers need. Interface and function fields
// exist so tests can swap in fakes without network access.
type Deps struct {
	Extractor    MetadataFetcher
	NewProvider  func(backend, model string) (seo.Provider, error)
	Refiner      *seo.TagRefiner
	Thumbnails   *thumbnail.Generator
	FetchUploads func(channelID string, maxCount int) ([]*types.VideoRef, error)
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(d *Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	if d.NewProvider == nil {
		d.NewProvider = seo.NewProvider
	}
	if d.FetchUploads == nil {
		d.FetchUploads = extractor.FetchChannelUploads
	}

	// Register resource routers
	RegisterWebRoutes(r)
	RegisterAnalyzeRoutes(r, d)
	RegisterVideoRoutes(r, d)
	RegisterChannelRoutes(r, d)
	RegisterPreviewRoutes(r)
	RegisterHealthRoutes(r)
	return r
}
