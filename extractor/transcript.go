package extractor

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// transcriptLanguages is the caption language preference order.
var transcriptLanguages = []string{"en", "en-US", "en-IN"}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind,omitempty"`
}

var captionTracksRe = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// fetchTranscript pulls the caption track list from the watch page and fetches
// the timedtext document for the best language match. All failures are soft.
func (s *Service) fetchTranscript(ctx context.Context, watchHTML string) (string, bool) {
	track := pickTrack(extractCaptionTracks(watchHTML), transcriptLanguages)
	if track == nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return "", false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}

	text, err := parseTimedText(body)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// extractCaptionTracks decodes the captionTracks JSON blob embedded in the
// watch page's player response.
func extractCaptionTracks(watchHTML string) []captionTrack {
	m := captionTracksRe.FindStringSubmatch(watchHTML)
	if m == nil {
		return nil
	}
	var tracks []captionTrack
	if err := json.Unmarshal([]byte(m[1]), &tracks); err != nil {
		return nil
	}
	return tracks
}

// pickTrack prefers an exact language match, then any language sharing the
// primary subtag, then the first available track.
func pickTrack(tracks []captionTrack, prefs []string) *captionTrack {
	if len(tracks) == 0 {
		return nil
	}
	for _, lang := range prefs {
		for i := range tracks {
			if tracks[i].LanguageCode == lang {
				return &tracks[i]
			}
		}
	}
	for _, lang := range prefs {
		base := strings.SplitN(lang, "-", 2)[0]
		for i := range tracks {
			if strings.HasPrefix(tracks[i].LanguageCode, base) {
				return &tracks[i]
			}
		}
	}
	return &tracks[0]
}

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Lines   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

// parseTimedText flattens a timedtext XML document into plain text, one caption
// line per row. Caption bodies arrive double-escaped, so unescape once more
// after XML decoding.
func parseTimedText(data []byte) (string, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("timedtext parse: %w", err)
	}

	lines := make([]string, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		text := strings.TrimSpace(html.UnescapeString(l.Body))
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n"), nil
}
