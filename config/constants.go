package config

import "time"

// SEO Output Constants
const (
	// TagCount is the number of tags every result must carry
	TagCount = 35

	// DescriptionMinWords is the lower bound requested for the description
	DescriptionMinWords = 400

	// DescriptionMaxWords is the upper bound requested for the description
	DescriptionMaxWords = 500

	// TitleCount is the number of ranked title suggestions requested
	TitleCount = 5

	// ThumbnailConceptCount is the number of thumbnail design ideas requested
	ThumbnailConceptCount = 3
)

// Transcript Constants
const (
	// TranscriptLimitCloud caps the transcript characters sent to cloud models
	TranscriptLimitCloud = 30000

	// TranscriptLimitLocal caps the transcript characters sent to local models
	TranscriptLimitLocal = 15000
)

// Backend Constants
const (
	// BackendOpenAI selects the cloud provider
	BackendOpenAI = "openai"

	// BackendOllama selects the locally hosted provider
	BackendOllama = "ollama"

	// DefaultCloudModel is used when the request does not name a model
	DefaultCloudModel = "gpt-4o"

	// DefaultLocalModel is the recommended lightweight Ollama model
	DefaultLocalModel = "qwen2.5:3b"

	// DefaultOllamaURL is the fixed local endpoint Ollama serves on
	DefaultOllamaURL = "http://localhost:11434"
)

// Timeout Constants
const (
	// ExtractTimeout bounds metadata and transcript fetches
	ExtractTimeout = 15 * time.Second

	// AnalyzeTimeout bounds a single LLM completion
	AnalyzeTimeout = 120 * time.Second

	// ImageTimeout bounds a single image generation call
	ImageTimeout = 90 * time.Second

	// CacheTTL bounds how long extracted metadata may be reused
	CacheTTL = 6 * time.Hour
)

// ChannelFeedMax is the most uploads returned from a channel feed request.
const ChannelFeedMax = 15

// SupportedLanguages lists the output languages the UI offers.
var SupportedLanguages = []string{
	"English", "Hindi", "Spanish", "French", "German", "Korean",
	"Japanese", "Chinese", "Portuguese", "Russian", "Italian", "Arabic",
}

// IsSupportedLanguage reports whether lang is one of SupportedLanguages.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
