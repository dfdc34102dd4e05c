package client

import (
	"context"
	"net/http"
	"net/url"

	"tubeseo/types"
)

// AnalyzeRequest mirrors the analyze endpoint input.
type AnalyzeRequest struct {
	URL           string `json:"url"`
	Language      string `json:"language,omitempty"`
	Backend       string `json:"backend,omitempty"`
	Model         string `json:"model,omitempty"`
	GenerateImage bool   `json:"generate_image,omitempty"`
}

// AnalyzeResponse mirrors the analyze endpoint output.
type AnalyzeResponse struct {
	Metadata *types.VideoMetadata `json:"metadata"`
	Result   *types.SeoResult     `json:"result"`
	Warnings []string             `json:"warnings,omitempty"`
}

// HealthResponse reports backend availability.
type HealthResponse struct {
	Status   string `json:"status"`
	Backends struct {
		OpenAI struct {
			Configured bool `json:"configured"`
		} `json:"openai"`
		Ollama struct {
			Reachable bool     `json:"reachable"`
			Models    []string `json:"models,omitempty"`
		} `json:"ollama"`
	} `json:"backends"`
}

// Analyze runs the full SEO pipeline for a video via the API
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/api/analyze", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Preview fetches video metadata only via the API
func (c *Client) Preview(ctx context.Context, videoURL string) (*types.VideoMetadata, error) {
	var meta types.VideoMetadata
	path := "/api/video?url=" + url.QueryEscape(videoURL)
	if err := c.doJSONRequest(ctx, http.MethodGet, path, nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Health checks server and backend availability via the API
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
