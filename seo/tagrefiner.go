package seo

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// TagRefiner drops semantically near-duplicate tags using Cohere embeddings.
// The prompt already forbids duplicates, but small local models ignore that
// often enough for an embedding pass to pay off.
type TagRefiner struct {
	client    *cohereclient.Client
	model     string
	threshold float64
}

// NewTagRefinerFromEnv returns a refiner when COHERE_API_KEY is set, else nil.
func NewTagRefinerFromEnv() *TagRefiner {
	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return nil
	}

	// Force HTTP/1.1: the Cohere endpoint intermittently breaks streams over HTTP/2.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &TagRefiner{
		client:    client,
		model:     "embed-english-v3.0",
		threshold: 0.92,
	}
}

// Dedupe keeps the first of any pair of tags whose embeddings exceed the
// similarity threshold. Order is preserved.
func (r *TagRefiner) Dedupe(ctx context.Context, tags []string) ([]string, error) {
	if len(tags) < 2 {
		return tags, nil
	}

	vectors, err := r.embed(ctx, tags)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(tags))
	keptVecs := make([][]float64, 0, len(tags))
	for i, tag := range tags {
		dup := false
		for _, v := range keptVecs {
			if cosineSimilarity(vectors[i], v) > r.threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, tag)
			keptVecs = append(keptVecs, vectors[i])
		}
	}
	return kept, nil
}

func (r *TagRefiner) embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := r.client.V2.Embed(
		ctx,
		&cohere.V2EmbedRequest{
			Texts:          texts,
			Model:          r.model,
			InputType:      cohere.EmbedInputTypeSearchDocument,
			EmbeddingTypes: []cohere.EmbeddingType{cohere.EmbeddingTypeFloat},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cohere embed error: %w", err)
	}
	if resp == nil || resp.Embeddings == nil || resp.Embeddings.Float == nil {
		return nil, errors.New("cohere embed returned no float embeddings")
	}
	if len(resp.Embeddings.Float) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}
	return resp.Embeddings.Float, nil
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
