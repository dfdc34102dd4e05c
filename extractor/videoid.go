package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"tubeseo/types"
)

// videoIDPatterns cover the URL shapes YouTube hands out: watch pages,
// youtu.be short links, embeds, legacy /v/ and /e/ paths, and shorts.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:[^#]*&)?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/e/)([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{6,})`),
}

var bareVideoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID resolves the video identifier from a YouTube URL or a bare ID.
func ParseVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("empty video URL")
	}

	if bareVideoIDRe.MatchString(rawURL) {
		return rawURL, nil
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}

	return "", fmt.Errorf("no video ID found in %q", rawURL)
}

// DetectPlatform identifies the hosting platform from the URL alone.
func DetectPlatform(rawURL string) string {
	u := strings.ToLower(rawURL)
	switch {
	case strings.Contains(u, "youtube.com"), strings.Contains(u, "youtu.be"):
		return types.PlatformYouTube
	case strings.Contains(u, "instagram.com"):
		return types.PlatformInstagram
	case strings.Contains(u, "linkedin.com"):
		return types.PlatformLinkedIn
	case strings.Contains(u, "facebook.com"):
		return types.PlatformFacebook
	case strings.Contains(u, "tiktok.com"):
		return types.PlatformTikTok
	default:
		return types.PlatformUnknown
	}
}
