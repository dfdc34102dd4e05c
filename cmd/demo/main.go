package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"tubeseo/demo/client"
	"tubeseo/demo/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	serverURL := flag.String("server", client.GetEnvOrDefault("SERVER_URL", "http://localhost:8080"), "Optimizer server URL")
	videoURL := flag.String("url", "", "Video URL to analyze (required)")
	language := flag.String("language", "English", "Output language")
	backend := flag.String("backend", "openai", "Model backend: openai or ollama")
	model := flag.String("model", "", "Model override (blank for backend default)")
	image := flag.Bool("image", false, "Also generate a thumbnail image")
	flag.Parse()

	if *videoURL == "" {
		fmt.Println("Usage: demo -url <video-url> [-server URL] [-language L] [-backend openai|ollama] [-model M] [-image]")
		os.Exit(1)
	}

	// Create TUI model
	m := tui.NewModel(client.NewClient(*serverURL), tui.Options{
		VideoURL:      *videoURL,
		Language:      *language,
		Backend:       *backend,
		Model:         *model,
		GenerateImage: *image,
	})

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
