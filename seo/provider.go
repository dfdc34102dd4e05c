package seo

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tubeseo/config"
)

// ErrBackendUnreachable marks provider failures that are fatal for the request.
// Handlers surface it as a user-visible message instead of a stack trace.
var ErrBackendUnreachable = errors.New("model backend unreachable")

// Provider abstracts an LLM backend that answers a prompt with (ideally) JSON.
type Provider interface {
	// Name returns the backend kind, one of config.BackendOpenAI / BackendOllama.
	Name() string
	// Model returns the concrete model identifier in use.
	Model() string
	// Complete sends the prompt and returns the raw response text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the provider selected by the request. An empty model
// falls back to the backend's default.
func NewProvider(backend, model string) (Provider, error) {
	switch backend {
	case config.BackendOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		if model == "" {
			model = config.DefaultCloudModel
		}
		return NewOpenAIProvider(apiKey, model), nil
	case config.BackendOllama:
		if model == "" {
			model = config.DefaultLocalModel
		}
		baseURL := config.GetEnvOrDefault("OLLAMA_URL", config.DefaultOllamaURL)
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// TranscriptLimit returns how many transcript characters the backend can take.
func TranscriptLimit(backend string) int {
	if backend == config.BackendOllama {
		return config.TranscriptLimitLocal
	}
	return config.TranscriptLimitCloud
}
