package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthCheckedMsg:
		return m.handleHealthChecked(msg)
	case PreviewFetchedMsg:
		return m.handlePreviewFetched(msg)
	case AnalyzeCompleteMsg:
		return m.handleAnalyzeComplete(msg)
	case ErrorMsg:
		return m.handleError(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a", "A":
		if m.State == StateIdle {
			m.State = StatePreviewing
			m = m.AddLog("Fetching video metadata: " + m.Options.VideoURL)
			return m, fetchPreview(m.AppClient, m.Options.VideoURL)
		}
	}
	return m, nil
}

// handleHealthChecked processes the startup health check
func (m Model) handleHealthChecked(msg HealthCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = fmt.Errorf("server unreachable: %w", msg.Err)
		return m, nil
	}
	m.Health = msg.Health
	m.State = StateIdle
	if msg.Health.Backends.Ollama.Reachable {
		m = m.AddLog(fmt.Sprintf("Ollama reachable with %d model(s)", len(msg.Health.Backends.Ollama.Models)))
	}
	if msg.Health.Backends.OpenAI.Configured {
		m = m.AddLog("OpenAI backend configured")
	}
	return m, nil
}

// handlePreviewFetched processes metadata extraction completion
func (m Model) handlePreviewFetched(msg PreviewFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Metadata = msg.Metadata
	m.State = StateAnalyzing
	if msg.Metadata.TranscriptPresent {
		m = m.AddLog(fmt.Sprintf("Metadata fetched: %q (transcript available)", msg.Metadata.Title))
	} else {
		m = m.AddLog(fmt.Sprintf("Metadata fetched: %q (no transcript)", msg.Metadata.Title))
	}
	return m, runAnalysis(m.AppClient, m.Options)
}

// handleAnalyzeComplete processes pipeline completion
func (m Model) handleAnalyzeComplete(msg AnalyzeCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Metadata = msg.Response.Metadata
	m.Result = msg.Response.Result
	m.Warnings = msg.Response.Warnings
	m.State = StateComplete
	m = m.AddLog(fmt.Sprintf("Received %d tags, %d titles, %d thumbnail concepts",
		len(m.Result.Tags), len(m.Result.Titles), len(m.Result.Thumbnails)))
	return m, nil
}

// handleError processes errors
func (m Model) handleError(msg ErrorMsg) (tea.Model, tea.Cmd) {
	m.State = StateError
	m.Err = msg.Err
	return m, nil
}
