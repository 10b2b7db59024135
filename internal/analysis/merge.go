package analysis

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
)

// MergeTranslatedText copies translated text fields into a deep copy of
// original. Only the fixed set of human-readable fields is eligible, and
// each is taken only when the translated value has non-whitespace
// content; everything else in the returned document is identical to
// original. The input is never mutated.
func MergeTranslatedText(original, translated AnalysisResult) AnalysisResult {
	out := original.Clone()

	setText(&out.Summary, translated.Summary)
	setText(&out.ArticleSummary, translated.ArticleSummary)
	setText(&out.Disclaimer, translated.Disclaimer)

	if out.Breakdown != nil && translated.Breakdown != nil {
		mergeReason(out.Breakdown.Sources, translated.Breakdown.Sources)
		mergeReason(out.Breakdown.Factual, translated.Breakdown.Factual)
		mergeReason(out.Breakdown.Tone, translated.Breakdown.Tone)
		mergeReason(out.Breakdown.Context, translated.Breakdown.Context)
		mergeReason(out.Breakdown.Transparency, translated.Breakdown.Transparency)
	}

	if out.WebPresence != nil && translated.WebPresence != nil {
		setText(&out.WebPresence.Observation, translated.WebPresence.Observation)
	}

	if out.Corroboration != nil && translated.Corroboration != nil {
		setText(&out.Corroboration.Summary, translated.Corroboration.Summary)
	}

	if out.ImageSignals != nil && translated.ImageSignals != nil {
		setText(&out.ImageSignals.Summary, translated.ImageSignals.Summary)
		setText(&out.ImageSignals.Note, translated.ImageSignals.Note)
		replaceStringList(&out.ImageSignals.Indicators, translated.ImageSignals.Indicators)
		replaceStringList(&out.ImageSignals.Conditions, translated.ImageSignals.Conditions)
	}

	if out.Result != nil && translated.Result != nil {
		setText(&out.Result.Summary, translated.Result.Summary)
		mergeLinks(out.Result.BestLinks, translated.Result.BestLinks)
		mergeLinks(out.Result.Sources, translated.Result.Sources)
	}

	return out
}

// setText overwrites dst only when src carries non-whitespace content.
func setText(dst *string, src string) {
	if strings.TrimSpace(src) != "" {
		*dst = src
	}
}

// mergeReason applies the text rule to a breakdown entry's Reason. The
// numeric fields are never read from the translated entry.
func mergeReason(dst, src *BreakdownEntry) {
	if dst == nil || src == nil {
		return
	}
	setText(&dst.Reason, src.Reason)
}

// mergeLinks merges Title and WhyItMatters pairwise by index, bounded by
// the shorter slice. URL, Publisher, TrustTier, and Stance in src are
// ignored regardless of content.
func mergeLinks(dst, src []SourceLink) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		setText(&dst[i].Title, src[i].Title)
		setText(&dst[i].WhyItMatters, src[i].WhyItMatters)
	}
}

// replaceStringList swaps dst for src only when src has exactly the same
// length and every element is non-empty, so a partial or truncated model
// output cannot corrupt a structured list.
func replaceStringList(dst *[]string, src []string) {
	if len(src) == 0 || len(src) != len(*dst) {
		return
	}
	for _, s := range src {
		if strings.TrimSpace(s) == "" {
			return
		}
	}
	*dst = append([]string(nil), src...)
}

// DecodeTranslated parses untrusted model output into an AnalysisResult.
// Unknown keys are dropped and a wrongly-typed field is tolerated (the
// rest of the object still decodes). It fails only when data is not a
// JSON object at all.
func DecodeTranslated(data []byte) (AnalysisResult, error) {
	var out AnalysisResult
	if err := json.Unmarshal(data, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return out, nil
		}
		return AnalysisResult{}, eris.Wrap(err, "analysis: decode translated")
	}
	return out, nil
}
