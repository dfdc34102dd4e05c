package seo

import (
	"context"
	"fmt"
	"log"

	"tubeseo/config"
	"tubeseo/types"
)

// Analyzer runs the prompt/completion/parse pipeline against one provider.
// The contract: a nil error always comes with a fully-populated SeoResult,
// even if the model misbehaved (warnings say so).
type Analyzer struct {
	provider Provider
	refiner  *TagRefiner
}

// NewAnalyzer wires an analyzer. refiner may be nil.
func NewAnalyzer(p Provider, refiner *TagRefiner) *Analyzer {
	return &Analyzer{provider: p, refiner: refiner}
}

// Analyze produces the SEO suite for one video. Returned warnings describe
// non-fatal degradations (fallback substitution, refiner failures).
func (a *Analyzer) Analyze(ctx context.Context, meta *types.VideoMetadata, language string) (*types.SeoResult, []string, error) {
	var warnings []string

	prompt := BuildPrompt(meta, language, TranscriptLimit(a.provider.Name()))
	log.Printf("seo: invoking %s model %s (language=%s, transcript=%v)",
		a.provider.Name(), a.provider.Model(), language, meta.TranscriptPresent)

	raw, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		log.Printf("seo: model output unusable (%v), substituting defaults", err)
		result = Fallback(meta)
		warnings = append(warnings, "model returned malformed output; default recommendations substituted")
	}

	if a.refiner != nil && len(result.Tags) > 1 {
		deduped, err := a.refiner.Dedupe(ctx, result.Tags)
		if err != nil {
			log.Printf("seo: tag refiner failed: %v (keeping raw tags)", err)
			warnings = append(warnings, "semantic tag dedup unavailable")
		} else {
			result.Tags = deduped
		}
	}
	result.Tags = NormalizeTags(result.Tags, config.TagCount)

	if len(result.Thumbnails) == 0 {
		result.Thumbnails = []types.ThumbnailConcept{DefaultConcept()}
	}
	if result.Description == "" {
		result.Description = Fallback(meta).Description
		warnings = append(warnings, "model returned no description; default substituted")
	}
	if len(result.Titles) == 0 {
		result.Titles = Fallback(meta).Titles
	}
	if result.Timestamps == nil {
		result.Timestamps = []types.Timestamp{}
	}

	return result, warnings, nil
}
