package seo

import (
	"fmt"
	"strings"

	"tubeseo/config"
	"tubeseo/types"
)

const promptTemplate = `You are a world-class video SEO strategist and growth expert.

LANGUAGE: %s
All generated text must be written in %s.

Analyze the video below and produce the best possible SEO optimization plan.

VIDEO DATA:
%s

OUTPUT REQUIREMENTS:

1. ANALYSIS
Deep insight on audience intent, tone, value proposition and engagement potential.

2. TAGS
EXACTLY %d SEO tags. No hashtags, no duplicates, short, high search intent.

3. DESCRIPTION
%d to %d words. Hook in the first line, keyword rich, call to action included.

4. TIMESTAMPS
Helpful navigation points as "MM:SS" offsets with short labels.

5. TITLES
%d high-CTR titles ranked by expected performance, each with a brief reason.

6. THUMBNAILS
%d thumbnail concepts, each with: concept, text_overlay, 3 color hex codes, focal_point, tone.

Return ONLY VALID JSON with this exact shape, no markdown, no explanations:
{
  "analysis": "...",
  "seo": {
    "tags": ["..."],
    "description": "...",
    "timestamps": [{"time": "MM:SS", "description": "..."}],
    "titles": [{"rank": 1, "title": "...", "reason": "..."}]
  },
  "thumbnails": {
    "thumbnail_concepts": [{"concept": "...", "text_overlay": "...", "colors": ["#RRGGBB"], "focal_point": "...", "tone": "..."}]
  }
}`

// BuildPrompt renders the analysis prompt for one video. transcriptLimit caps
// how much transcript text is inlined; the rest is dropped with a marker.
func BuildPrompt(meta *types.VideoMetadata, language string, transcriptLimit int) string {
	return fmt.Sprintf(promptTemplate,
		language, language,
		formatVideoInfo(meta, transcriptLimit),
		config.TagCount,
		config.DescriptionMinWords, config.DescriptionMaxWords,
		config.TitleCount,
		config.ThumbnailConceptCount,
	)
}

func formatVideoInfo(meta *types.VideoMetadata, transcriptLimit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", meta.Title)
	if meta.Author != "" {
		fmt.Fprintf(&b, "Creator: %s\n", meta.Author)
	}
	fmt.Fprintf(&b, "Platform: %s\n", meta.Platform)
	if meta.DurationSeconds > 0 {
		fmt.Fprintf(&b, "Duration: %d seconds\n", meta.DurationSeconds)
	}
	if meta.Description != "" {
		fmt.Fprintf(&b, "Current description: %s\n", meta.Description)
	}

	if !meta.TranscriptPresent {
		b.WriteString("\nTranscript: not available. Base the plan on the metadata above.\n")
		return b.String()
	}

	transcript := meta.Transcript
	if transcriptLimit > 0 && len(transcript) > transcriptLimit {
		transcript = transcript[:transcriptLimit] + " ... (truncated)"
	}
	fmt.Fprintf(&b, "\nTranscript:\n%s\n", transcript)
	return b.String()
}
