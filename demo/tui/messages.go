package tui

import (
	"tubeseo/demo/client"
	"tubeseo/types"
)

// Messages for the tea program

// HealthCheckedMsg is sent when the server health check returns
type HealthCheckedMsg struct {
	Health *client.HealthResponse
	Err    error
}

// PreviewFetchedMsg is sent when video metadata has been fetched
type PreviewFetchedMsg struct {
	Metadata *types.VideoMetadata
	Err      error
}

// AnalyzeCompleteMsg is sent when the full SEO pipeline finishes
type AnalyzeCompleteMsg struct {
	Response *client.AnalyzeResponse
	Err      error
}

// ErrorMsg carries an unrecoverable error
type ErrorMsg struct {
	Err error
}
