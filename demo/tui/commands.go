package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tubeseo/demo/client"
)

// checkHealth creates a command to check server and backend availability
func checkHealth(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		health, err := c.Health(ctx)
		return HealthCheckedMsg{Health: health, Err: err}
	}
}

// fetchPreview creates a command to fetch video metadata
func fetchPreview(c *client.Client, videoURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		meta, err := c.Preview(ctx, videoURL)
		return PreviewFetchedMsg{Metadata: meta, Err: err}
	}
}

// runAnalysis creates a command to run the full SEO pipeline
func runAnalysis(c *client.Client, opts Options) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		resp, err := c.Analyze(ctx, client.AnalyzeRequest{
			URL:           opts.VideoURL,
			Language:      opts.Language,
			Backend:       opts.Backend,
			Model:         opts.Model,
			GenerateImage: opts.GenerateImage,
		})
		return AnalyzeCompleteMsg{Response: resp, Err: err}
	}
}
