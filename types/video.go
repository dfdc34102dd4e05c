package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// VideoMetadata holds everything the extractor learned about a single video.
// It is built once per request and never mutated afterwards.
type VideoMetadata struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Author            string    `json:"author,omitempty"`
	Platform          string    `json:"platform"`
	DurationSeconds   int       `json:"duration_seconds"`
	Views             int64     `json:"views,omitempty"`
	ThumbnailURL      string    `json:"thumbnail_url,omitempty"`
	TranscriptPresent bool      `json:"transcript_present"`
	Transcript        string    `json:"transcript,omitempty"`
	FetchedAt         time.Time `json:"fetched_at"`
}

// VideoRef is a lightweight pointer to a video, as listed in a channel feed.
type VideoRef struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// GenerateID creates a stable short identifier from a URL, for videos whose
// platform has no native ID we can parse.
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}

// Supported platform names as reported by the extractor.
const (
	PlatformYouTube   = "YouTube"
	PlatformInstagram = "Instagram"
	PlatformLinkedIn  = "LinkedIn"
	PlatformFacebook  = "Facebook"
	PlatformTikTok    = "TikTok"
	PlatformUnknown   = "Unknown"
)
