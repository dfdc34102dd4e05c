package types

// SeoResult is the structured output of one analysis run. The orchestrator
// guarantees a fully-populated value even when the model misbehaves: parse
// failures are replaced field-by-field with conservative defaults.
type SeoResult struct {
	Analysis    string             `json:"analysis"`
	Tags        []string           `json:"tags"`
	Description string             `json:"description"`
	Titles      []TitleSuggestion  `json:"titles"`
	Timestamps  []Timestamp        `json:"timestamps"`
	Thumbnails  []ThumbnailConcept `json:"thumbnails"`
}

// TitleSuggestion is one ranked title idea. Order in SeoResult.Titles is the rank.
type TitleSuggestion struct {
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

// Timestamp marks a navigation point within the video.
type Timestamp struct {
	OffsetSeconds int    `json:"offset_seconds"`
	Label         string `json:"label"`
}

// ThumbnailConcept describes one thumbnail design idea. ImageURL is only set
// when image generation ran and succeeded; the text fields are always present.
type ThumbnailConcept struct {
	VisualIdea   string   `json:"visual_idea"`
	OverlayText  string   `json:"overlay_text"`
	ColorPalette []string `json:"color_palette"`
	FocalPoint   string   `json:"focal_point,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}
