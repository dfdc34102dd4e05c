package extractor

import (
	"fmt"
	"time"

	readability "github.com/go-shiori/go-readability"

	"tubeseo/config"
	"tubeseo/types"
)

// fetchGeneric handles non-YouTube video URLs. There is no transcript source
// for these platforms, so the page itself supplies title, author and summary.
func (s *Service) fetchGeneric(rawURL, platform string) (*types.VideoMetadata, error) {
	meta := &types.VideoMetadata{
		ID:        types.GenerateID(rawURL),
		Title:     fmt.Sprintf("Video on %s", platform),
		Platform:  platform,
		FetchedAt: time.Now(),
	}

	article, err := readability.FromURL(rawURL, config.ExtractTimeout)
	if err != nil {
		// The stub metadata is still usable for a metadata-only prompt.
		return meta, nil
	}

	if article.Title != "" {
		meta.Title = article.Title
	}
	meta.Description = article.Excerpt
	meta.Author = article.Byline
	meta.ThumbnailURL = article.Image
	return meta, nil
}
