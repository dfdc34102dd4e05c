package thumbnail

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"tubeseo/types"
)

// Generator turns thumbnail concepts into images via DALL-E 3. A nil Generator
// (no API key) means the concept text is the whole deliverable.
type Generator struct {
	client *openai.Client
}

// NewGenerator returns a Generator, or nil when apiKey is empty.
func NewGenerator(apiKey string) *Generator {
	if apiKey == "" {
		return nil
	}
	return &Generator{client: openai.NewClient(apiKey)}
}

// platformSizes maps a platform to its DALL-E output size.
var platformSizes = map[string]string{
	types.PlatformYouTube:   openai.CreateImageSize1792x1024,
	types.PlatformInstagram: openai.CreateImageSize1024x1024,
	types.PlatformLinkedIn:  openai.CreateImageSize1792x1024,
}

// GenerateImage renders one concept and returns the hosted image URL. Callers
// treat any error as non-fatal: the concept text always survives.
func (g *Generator) GenerateImage(ctx context.Context, concept types.ThumbnailConcept, videoTitle, platform string) (string, error) {
	size, ok := platformSizes[platform]
	if !ok {
		size = openai.CreateImageSize1792x1024
	}

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:   openai.CreateImageModelDallE3,
		Prompt:  buildImagePrompt(concept, videoTitle, platform, size),
		Size:    size,
		Quality: openai.CreateImageQualityStandard,
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image generation returned no image")
	}

	log.Printf("thumbnail: generated %s image for %q", size, concept.OverlayText)
	return resp.Data[0].URL, nil
}

func buildImagePrompt(concept types.ThumbnailConcept, videoTitle, platform, size string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a highly engaging professional %s thumbnail in %s.\n", platform, size)
	b.WriteString("- Sharp composition, cinematic depth, clear subject visibility\n")
	if concept.OverlayText != "" {
		fmt.Fprintf(&b, "- Strong readable foreground text: %q\n", concept.OverlayText)
	}
	if concept.FocalPoint != "" {
		fmt.Fprintf(&b, "- Focus subject: %s\n", concept.FocalPoint)
	}
	if concept.Tone != "" {
		fmt.Fprintf(&b, "- Emotional tone: %s\n", concept.Tone)
	}
	fmt.Fprintf(&b, "- Visual concept: %s\n", concept.VisualIdea)
	if len(concept.ColorPalette) > 0 {
		fmt.Fprintf(&b, "- Color palette: %s\n", strings.Join(concept.ColorPalette, ", "))
	}
	b.WriteString("- Strong contrast, readable on mobile, no clutter or tiny text\n")
	fmt.Fprintf(&b, "Video title context: %q", videoTitle)
	return b.String()
}
