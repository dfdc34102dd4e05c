package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tubeseo/demo/client"
	"tubeseo/types"
)

// State represents the application state machine
type State string

const (
	StateChecking   State = "checking"
	StateIdle       State = "idle"
	StatePreviewing State = "previewing"
	StateAnalyzing  State = "analyzing"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Options are the analysis parameters fixed at startup via flags
type Options struct {
	VideoURL      string
	Language      string
	Backend       string
	Model         string
	GenerateImage bool
}

// Model represents the TUI client state (thin client over the HTTP API)
type Model struct {
	AppClient *client.Client
	Options   Options

	State    State
	Health   *client.HealthResponse
	Metadata *types.VideoMetadata
	Result   *types.SeoResult
	Warnings []string
	Err      error
	Logs     []string
}

// NewModel creates a new TUI model
func NewModel(c *client.Client, opts Options) Model {
	return Model{
		AppClient: c,
		Options:   opts,
		State:     StateChecking,
		Logs:      []string{},
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return checkHealth(m.AppClient)
}

// AddLog appends a timestamped log line, keeping the last ten
func (m Model) AddLog(msg string) Model {
	m.Logs = append(m.Logs, fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg))
	if len(m.Logs) > 10 {
		m.Logs = m.Logs[len(m.Logs)-10:]
	}
	return m
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateChecking:
		return StatusStyle.Render("🔌 Checking server health...")
	case StateIdle:
		return HighlightStyle.Render("👋 Ready!") + "\n\n" +
			InfoStyle.Render(TextStartInstruction)
	case StatePreviewing:
		return StatusStyle.Render("⏳ Fetching video metadata...")
	case StateAnalyzing:
		return StatusStyle.Render(fmt.Sprintf("🧠 Generating SEO recommendations (%s)...", m.Options.Backend))
	case StateComplete:
		return HighlightStyle.Render("✅ COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}

// formatResult formats the SEO recommendations for display
func (m Model) formatResult() string {
	r := m.Result
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("SEO Recommendations"))
	b.WriteString("\n\n")

	if r.Analysis != "" {
		analysis := r.Analysis
		if len(analysis) > 300 {
			analysis = analysis[:300] + "..."
		}
		b.WriteString(fmt.Sprintf("Analysis:\n%s\n\n", InfoStyle.Render(analysis)))
	}

	b.WriteString(fmt.Sprintf("Tags (%d):\n", len(r.Tags)))
	b.WriteString(TagStyle.Render(wrapTags(r.Tags, 70)))
	b.WriteString("\n\n")

	words := len(strings.Fields(r.Description))
	descPreview := r.Description
	if len(descPreview) > 300 {
		descPreview = descPreview[:300] + "..."
	}
	b.WriteString(fmt.Sprintf("Description (%d words):\n%s\n\n", words, InfoStyle.Render(descPreview)))

	if len(r.Titles) > 0 {
		b.WriteString("Title suggestions:\n")
		for i, t := range r.Titles {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, t.Text))
		}
		b.WriteString("\n")
	}

	if len(r.Timestamps) > 0 {
		b.WriteString("Timestamps:\n")
		for _, ts := range r.Timestamps {
			b.WriteString(fmt.Sprintf("  %02d:%02d  %s\n", ts.OffsetSeconds/60, ts.OffsetSeconds%60, ts.Label))
		}
		b.WriteString("\n")
	}

	if len(r.Thumbnails) > 0 {
		b.WriteString(fmt.Sprintf("Thumbnail concepts: %d\n", len(r.Thumbnails)))
		for _, c := range r.Thumbnails {
			b.WriteString(fmt.Sprintf("  • %q — %s\n", c.OverlayText, c.Tone))
			if c.ImageURL != "" {
				b.WriteString(InfoStyle.Render("    image: "+c.ImageURL) + "\n")
			}
		}
	}

	return b.String()
}

// wrapTags joins hashtags into lines no wider than limit
func wrapTags(tags []string, limit int) string {
	var b strings.Builder
	lineLen := 0
	for i, t := range tags {
		tag := "#" + t
		if i > 0 {
			if lineLen+len(tag)+1 > limit {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(tag)
		lineLen += len(tag)
	}
	return b.String()
}
