package seo

import (
	"math"
	"testing"

	"tubeseo/config"
)

func TestNewProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider(config.BackendOpenAI, ""); err == nil {
		t.Error("openai without API key must fail")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	p, err := NewProvider(config.BackendOpenAI, "")
	if err != nil {
		t.Fatalf("openai with key: %v", err)
	}
	if p.Model() != config.DefaultCloudModel {
		t.Errorf("default cloud model = %q, want %q", p.Model(), config.DefaultCloudModel)
	}

	p, err = NewProvider(config.BackendOllama, "")
	if err != nil {
		t.Fatalf("ollama needs no key: %v", err)
	}
	if p.Name() != config.BackendOllama {
		t.Errorf("Name = %q", p.Name())
	}
	if p.Model() != config.DefaultLocalModel {
		t.Errorf("default local model = %q, want %q", p.Model(), config.DefaultLocalModel)
	}

	p, err = NewProvider(config.BackendOllama, "llama3.2:1b")
	if err != nil {
		t.Fatal(err)
	}
	if p.Model() != "llama3.2:1b" {
		t.Errorf("model override ignored: %q", p.Model())
	}

	if _, err := NewProvider("bedrock", ""); err == nil {
		t.Error("unknown backend must fail")
	}
}

func TestTranscriptLimit(t *testing.T) {
	if got := TranscriptLimit(config.BackendOllama); got != config.TranscriptLimitLocal {
		t.Errorf("local limit = %d", got)
	}
	if got := TranscriptLimit(config.BackendOpenAI); got != config.TranscriptLimitCloud {
		t.Errorf("cloud limit = %d", got)
	}
}

func TestNewTagRefinerFromEnv(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "")
	if r := NewTagRefinerFromEnv(); r != nil {
		t.Error("refiner must be nil without COHERE_API_KEY")
	}

	t.Setenv("COHERE_API_KEY", "test-key")
	if r := NewTagRefinerFromEnv(); r == nil {
		t.Error("refiner nil with COHERE_API_KEY set")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}
