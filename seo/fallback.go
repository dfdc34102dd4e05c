package seo

import (
	"fmt"

	"tubeseo/config"
	"tubeseo/types"
)

// stockTagPool pads thin tag lists and seeds the fallback result.
var stockTagPool = []string{
	"youtube", "video", "content", "viral", "trending", "growth", "algorithm",
	"seo", "engagement", "audience", "creator", "strategy", "subscribe",
	"watch", "discover", "channel", "views", "recommended", "optimization",
	"marketing", "social media", "how to", "tutorial", "guide", "tips",
	"best of", "explained", "review", "highlights", "learn", "insights",
	"community", "share", "playlist", "shorts",
}

// Fallback builds the default-filled result substituted when the model's
// output cannot be parsed. The UI never sees malformed data.
func Fallback(meta *types.VideoMetadata) *types.SeoResult {
	title := meta.Title
	if title == "" {
		title = "Untitled Video"
	}

	return &types.SeoResult{
		Analysis: fmt.Sprintf("SEO analysis is temporarily unavailable for %q.", title),
		Tags:     NormalizeTags(nil, config.TagCount),
		Description: fmt.Sprintf(
			"This is a video titled %q. A full AI-generated SEO description could not be produced right now; please retry the analysis.",
			title),
		Titles: []types.TitleSuggestion{
			{Text: title, Reason: "Original title kept as fallback"},
		},
		Timestamps: []types.Timestamp{
			{OffsetSeconds: 0, Label: "Introduction"},
			{OffsetSeconds: 30, Label: "Main content begins"},
		},
		Thumbnails: []types.ThumbnailConcept{DefaultConcept()},
	}
}

// DefaultConcept is the thumbnail idea used when the model returned none.
func DefaultConcept() types.ThumbnailConcept {
	return types.ThumbnailConcept{
		VisualIdea:   "Bold modern thumbnail with strong central text on a high-contrast background",
		OverlayText:  "WATCH THIS",
		ColorPalette: []string{"#FF0000", "#FFFFFF", "#000000"},
		FocalPoint:   "Center subject",
		Tone:         "Bold",
	}
}
