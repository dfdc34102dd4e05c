package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">Welcome back to the channel</text>
  <text start="2.5" dur="3.0">today we&amp;#39;re talking about Go</text>
  <text start="5.5" dur="1.0">   </text>
  <text start="6.5" dur="2.0">let&amp;#39;s dive in</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	text, err := parseTimedText([]byte(sampleTimedText))
	if err != nil {
		t.Fatalf("parseTimedText error: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (blank line dropped): %q", len(lines), text)
	}
	if lines[0] != "Welcome back to the channel" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "today we're talking about Go" {
		t.Errorf("double-escaped apostrophe not unescaped: %q", lines[1])
	}
}

func TestParseTimedTextMalformed(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <<<")); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestExtractCaptionTracks(t *testing.T) {
	html := `var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":` +
		`{"captionTracks":[{"baseUrl":"https://example.com/tt?lang=en","languageCode":"en","kind":"asr"},` +
		`{"baseUrl":"https://example.com/tt?lang=es","languageCode":"es"}]}}};`

	tracks := extractCaptionTracks(html)
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].LanguageCode != "en" || tracks[0].Kind != "asr" {
		t.Errorf("unexpected first track: %+v", tracks[0])
	}

	if got := extractCaptionTracks("<html>no captions here</html>"); got != nil {
		t.Errorf("expected nil for page without captions, got %v", got)
	}
}

func TestPickTrack(t *testing.T) {
	prefs := []string{"en", "en-US", "en-IN"}

	tests := []struct {
		name   string
		tracks []captionTrack
		want   string
	}{
		{"exact match wins", []captionTrack{{LanguageCode: "es"}, {LanguageCode: "en"}}, "en"},
		{"prefix match", []captionTrack{{LanguageCode: "es"}, {LanguageCode: "en-GB"}}, "en-GB"},
		{"first track fallback", []captionTrack{{LanguageCode: "ja"}, {LanguageCode: "ko"}}, "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickTrack(tt.tracks, prefs)
			if got == nil {
				t.Fatal("pickTrack returned nil")
			}
			if got.LanguageCode != tt.want {
				t.Errorf("picked %q, want %q", got.LanguageCode, tt.want)
			}
		})
	}

	if pickTrack(nil, prefs) != nil {
		t.Error("expected nil for empty track list")
	}
}

func TestFetchTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleTimedText)
	}))
	defer srv.Close()

	svc := NewService("", nil)

	html := fmt.Sprintf(`{"captionTracks":[{"baseUrl":"%s/tt","languageCode":"en"}]}`, srv.URL)
	text, ok := svc.fetchTranscript(context.Background(), html)
	if !ok {
		t.Fatal("expected transcript to be fetched")
	}
	if !strings.Contains(text, "Welcome back to the channel") {
		t.Errorf("transcript missing caption text: %q", text)
	}
}

func TestFetchTranscriptSoftFailures(t *testing.T) {
	svc := NewService("", nil)

	// No caption tracks on the page.
	if _, ok := svc.fetchTranscript(context.Background(), "<html></html>"); ok {
		t.Error("expected ok=false when page has no captions")
	}

	// Track URL returns a server error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	html := fmt.Sprintf(`{"captionTracks":[{"baseUrl":"%s/tt","languageCode":"en"}]}`, srv.URL)
	if _, ok := svc.fetchTranscript(context.Background(), html); ok {
		t.Error("expected ok=false when timedtext endpoint fails")
	}
}
