package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📺 Video SEO Optimizer Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Target video
	b.WriteString(InfoStyle.Render(fmt.Sprintf("🎯 Video: %s | Language: %s | Backend: %s",
		m.Options.VideoURL, m.Options.Language, m.Options.Backend)))
	b.WriteString("\n")

	// Metadata card
	if m.Metadata != nil {
		transcript := "no transcript"
		if m.Metadata.TranscriptPresent {
			transcript = "transcript available"
		}
		card := fmt.Sprintf("📊 %s — %s (%s, %s)",
			m.Metadata.Title, m.Metadata.Author, m.Metadata.Platform, transcript)
		b.WriteString(InfoStyle.Render(card))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Warnings
	for _, w := range m.Warnings {
		b.WriteString(ErrorStyle.Render("⚠️  " + w))
		b.WriteString("\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.State == StateComplete && m.Result != nil {
		b.WriteString(BoxStyle.Render(m.formatResult()))
		b.WriteString("\n\n")
	}

	// Help text
	if m.State == StateIdle {
		b.WriteString(InfoStyle.Render(TextFooterIdle))
	} else if m.State != StateComplete {
		b.WriteString(InfoStyle.Render(TextFooterRunning))
	} else {
		b.WriteString(HighlightStyle.Render("Press 'q' or Ctrl+C to exit"))
	}

	return b.String()
}
