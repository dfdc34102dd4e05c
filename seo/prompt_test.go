package seo

import (
	"strings"
	"testing"

	"tubeseo/types"
)

func testMeta() *types.VideoMetadata {
	return &types.VideoMetadata{
		ID:                "dQw4w9WgXcQ",
		Title:             "Go Concurrency Patterns",
		Author:            "GopherAcademy",
		Platform:          types.PlatformYouTube,
		DurationSeconds:   754,
		Description:       "A walkthrough of channels and goroutines.",
		TranscriptPresent: true,
		Transcript:        "welcome back to the channel today we cover goroutines",
	}
}

func TestBuildPromptContents(t *testing.T) {
	prompt := BuildPrompt(testMeta(), "English", 0)

	for _, want := range []string{
		"EXACTLY 35 SEO tags",
		"400 to 500 words",
		"5 high-CTR titles",
		"3 thumbnail concepts",
		"LANGUAGE: English",
		"Go Concurrency Patterns",
		"GopherAcademy",
		"welcome back to the channel",
		"ONLY VALID JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptLanguage(t *testing.T) {
	en := BuildPrompt(testMeta(), "English", 0)
	hi := BuildPrompt(testMeta(), "Hindi", 0)

	if en == hi {
		t.Fatal("prompts for different languages must differ")
	}
	if !strings.Contains(hi, "must be written in Hindi") {
		t.Error("Hindi prompt missing language directive")
	}
	// Only the language lines change; the payload shape stays fixed.
	if !strings.Contains(hi, `"thumbnail_concepts"`) {
		t.Error("output shape missing from prompt")
	}
}

func TestBuildPromptTruncatesTranscript(t *testing.T) {
	meta := testMeta()
	meta.Transcript = strings.Repeat("word ", 1000)

	prompt := BuildPrompt(meta, "English", 100)
	if !strings.Contains(prompt, "... (truncated)") {
		t.Error("long transcript not truncated")
	}

	full := BuildPrompt(meta, "English", 0)
	if strings.Contains(full, "... (truncated)") {
		t.Error("zero limit must not truncate")
	}
}

func TestBuildPromptNoTranscript(t *testing.T) {
	meta := testMeta()
	meta.TranscriptPresent = false
	meta.Transcript = ""

	prompt := BuildPrompt(meta, "English", 0)
	if !strings.Contains(prompt, "Transcript: not available") {
		t.Error("metadata-only prompt missing transcript marker")
	}
}
