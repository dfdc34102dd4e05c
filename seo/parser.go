package seo

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tubeseo/types"
)

// ErrMalformedOutput marks model responses that survived no repair attempt.
// Callers substitute the fallback result instead of failing the request.
var ErrMalformedOutput = errors.New("malformed model output")

// llmPayload mirrors the JSON shape the prompt demands.
type llmPayload struct {
	Analysis string `json:"analysis"`
	Seo      struct {
		Tags        []string `json:"tags"`
		Description string   `json:"description"`
		Timestamps  []struct {
			Time        string `json:"time"`
			Description string `json:"description"`
		} `json:"timestamps"`
		Titles []struct {
			Rank   int    `json:"rank"`
			Title  string `json:"title"`
			Reason string `json:"reason"`
		} `json:"titles"`
	} `json:"seo"`
	// Models return thumbnails either as {"thumbnail_concepts": [...]} or as a
	// bare list, so decode lazily.
	Thumbnails json.RawMessage `json:"thumbnails"`
}

type conceptPayload struct {
	Concept     string   `json:"concept"`
	TextOverlay string   `json:"text_overlay"`
	Colors      []string `json:"colors"`
	FocalPoint  string   `json:"focal_point"`
	Tone        string   `json:"tone"`
}

// ParseResult turns raw model output into a SeoResult. It makes one repair
// attempt (fence stripping + extracting the first balanced JSON object) before
// giving up; missing fields become safe defaults, never nils.
func ParseResult(raw string) (*types.SeoResult, error) {
	candidate, ok := ExtractJSON(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedOutput)
	}

	var payload llmPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	result := &types.SeoResult{
		Analysis:    payload.Analysis,
		Tags:        payload.Seo.Tags,
		Description: payload.Seo.Description,
		Titles:      make([]types.TitleSuggestion, 0, len(payload.Seo.Titles)),
		Timestamps:  make([]types.Timestamp, 0, len(payload.Seo.Timestamps)),
		Thumbnails:  decodeThumbnails(payload.Thumbnails),
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}

	titles := payload.Seo.Titles
	sort.SliceStable(titles, func(i, j int) bool { return titles[i].Rank < titles[j].Rank })
	for _, t := range titles {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		result.Titles = append(result.Titles, types.TitleSuggestion{Text: t.Title, Reason: t.Reason})
	}

	for _, ts := range payload.Seo.Timestamps {
		offset, err := ParseClock(ts.Time)
		if err != nil {
			continue
		}
		result.Timestamps = append(result.Timestamps, types.Timestamp{
			OffsetSeconds: offset,
			Label:         ts.Description,
		})
	}

	return result, nil
}

// ExtractJSON strips markdown fences and wrapper prose, returning the first
// balanced top-level JSON object. This is the single repair attempt allowed.
func ExtractJSON(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func decodeThumbnails(raw json.RawMessage) []types.ThumbnailConcept {
	if len(raw) == 0 {
		return []types.ThumbnailConcept{}
	}

	var concepts []conceptPayload
	var wrapper struct {
		Concepts []conceptPayload `json:"thumbnail_concepts"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Concepts) > 0 {
		concepts = wrapper.Concepts
	} else if err := json.Unmarshal(raw, &concepts); err != nil {
		return []types.ThumbnailConcept{}
	}

	out := make([]types.ThumbnailConcept, 0, len(concepts))
	for _, c := range concepts {
		if strings.TrimSpace(c.Concept) == "" && strings.TrimSpace(c.TextOverlay) == "" {
			continue
		}
		out = append(out, types.ThumbnailConcept{
			VisualIdea:   c.Concept,
			OverlayText:  c.TextOverlay,
			ColorPalette: sanitizeColors(c.Colors),
			FocalPoint:   c.FocalPoint,
			Tone:         c.Tone,
		})
	}
	return out
}

func sanitizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		out = append(out, c)
	}
	return out
}

// ParseClock converts "MM:SS" or "H:MM:SS" into whole seconds.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("bad clock value %q", clock)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad clock value %q", clock)
		}
		total = total*60 + n
	}
	return total, nil
}

// NormalizeTags dedupes case-insensitively, strips hashtag prefixes and pads
// or trims the list to exactly want entries.
func NormalizeTags(tags []string, want int) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, want)
	for _, tag := range tags {
		tag = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
		if len(out) == want {
			return out
		}
	}

	for _, tag := range stockTagPool {
		if len(out) == want {
			return out
		}
		if seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		out = append(out, tag)
	}
	for i := 0; len(out) < want; i++ {
		out = append(out, fmt.Sprintf("extra_tag_%d", i))
	}
	return out
}
