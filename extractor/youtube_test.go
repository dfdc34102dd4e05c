package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tubeseo/types"
)

const sampleWatchPage = `<html><head>
<meta property="og:title" content="Building a REST API in Go">
<meta property="og:description" content="Step by step walkthrough of a production API.">
<link itemprop="name" content="GopherAcademy">
</head><body>
<script>var ytInitialPlayerResponse = {"videoDetails":{"lengthSeconds":"754","viewCount":"120345"}};</script>
</body></html>`

func TestFillFromWatchPage(t *testing.T) {
	meta := &types.VideoMetadata{ID: "dQw4w9WgXcQ"}
	fillFromWatchPage(meta, sampleWatchPage)

	if meta.Title != "Building a REST API in Go" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "Step by step walkthrough of a production API." {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Author != "GopherAcademy" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.DurationSeconds != 754 {
		t.Errorf("DurationSeconds = %d, want 754", meta.DurationSeconds)
	}
	if meta.Views != 120345 {
		t.Errorf("Views = %d, want 120345", meta.Views)
	}
}

func TestFillFromWatchPageMissingFields(t *testing.T) {
	meta := &types.VideoMetadata{ID: "abc123def45", Title: "YouTube Video (abc123def45)"}
	fillFromWatchPage(meta, "<html><body>consent wall</body></html>")

	if meta.Title != "YouTube Video (abc123def45)" {
		t.Errorf("default title overwritten: %q", meta.Title)
	}
	if meta.DurationSeconds != 0 || meta.Views != 0 {
		t.Errorf("expected zero stats, got %d / %d", meta.DurationSeconds, meta.Views)
	}
}

func TestFetchScrapePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watch" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, sampleWatchPage)
	}))
	defer srv.Close()

	svc := NewService("", nil)
	svc.watchBase = srv.URL

	meta, err := svc.Fetch(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if meta.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", meta.ID)
	}
	if meta.Title != "Building a REST API in Go" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Platform != types.PlatformYouTube {
		t.Errorf("Platform = %q", meta.Platform)
	}
	if meta.ThumbnailURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("ThumbnailURL = %q", meta.ThumbnailURL)
	}
	// Sample page carries no caption tracks: transcript absence is not an error.
	if meta.TranscriptPresent {
		t.Error("TranscriptPresent = true, want false")
	}
	if meta.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestFetchWatchPageDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewService("", nil)
	svc.watchBase = srv.URL

	meta, err := svc.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch should degrade to defaults, got error: %v", err)
	}
	if meta.Title != "YouTube Video (dQw4w9WgXcQ)" {
		t.Errorf("Title = %q, want placeholder", meta.Title)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	svc := NewService("", nil)
	if _, err := svc.Fetch(context.Background(), "https://www.youtube.com/feed/library"); err == nil {
		t.Fatal("expected error for URL without a video ID")
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"PT1H2M3S", 3723, false},
		{"PT15M33S", 933, false},
		{"PT45S", 45, false},
		{"PT2H", 7200, false},
		{"P1DT1S", 86401, false},
		{"pt4m20s", 260, false},
		{"", 0, true},
		{"one hour", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseISODuration(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseISODuration(%q) = %d, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseISODuration(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
