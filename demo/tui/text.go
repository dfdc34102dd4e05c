package tui

// UI Text Constants
const (
	// Instructions
	TextStartInstruction = "Press 'a' to analyze the video"

	// Footer
	TextFooterIdle    = "Press 'a' to analyze | Press 'q' or Ctrl+C to quit"
	TextFooterRunning = "Press 'q' or Ctrl+C to quit"
)
