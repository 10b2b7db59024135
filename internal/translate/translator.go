// Package translate renders an analysis document into another language
// by calling the model and merging only the translated text fields back
// into the original. Any failure falls back to the untranslated document.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/credlens/credlens/internal/analysis"
	"github.com/credlens/credlens/internal/resilience"
	"github.com/credlens/credlens/pkg/anthropic"
)

const systemPrompt = `You translate credibility analysis documents. You will receive a JSON document and a target language.

Rules:
- Translate ONLY human-readable text values: summaries, reasons, observations, disclaimers, titles, and explanatory notes.
- NEVER change numbers, scores, points, booleans, URLs, publisher names, trust tiers, stances, or any JSON key.
- Keep the JSON structure exactly as given.
- Respond with the translated JSON object only, no commentary.`

// Options configures a Translator.
type Options struct {
	Client         anthropic.Client
	Model          string
	MaxTokens      int64
	Retry          resilience.RetryConfig
	RequestTimeout time.Duration
}

// Translator invokes the translation model and merges its output.
type Translator struct {
	client         anthropic.Client
	model          string
	maxTokens      int64
	retry          resilience.RetryConfig
	requestTimeout time.Duration
}

// New creates a Translator, applying defaults for zero options.
func New(opts Options) *Translator {
	if opts.Model == "" {
		opts.Model = "claude-haiku-4-5-20251001"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 8192
	}
	if opts.Retry.MaxAttempts <= 0 {
		opts.Retry = resilience.DefaultRetryConfig()
	}
	if opts.Retry.OnRetry == nil {
		opts.Retry.OnRetry = resilience.RetryLogger("anthropic", "translate")
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	return &Translator{
		client:         opts.Client,
		model:          opts.Model,
		maxTokens:      opts.MaxTokens,
		retry:          opts.Retry,
		requestTimeout: opts.RequestTimeout,
	}
}

// Translate returns original with its text fields rendered in the target
// language. The structural fields always come from original. When the
// model call or its output parsing fails in any way, original is
// returned unchanged; Translate never fails the request.
func (t *Translator) Translate(ctx context.Context, original analysis.AnalysisResult, targetLanguage string) analysis.AnalysisResult {
	payload, err := json.Marshal(original)
	if err != nil {
		zap.L().Error("marshal analysis for translation", zap.Error(err))
		return original
	}

	lang := LanguageName(targetLanguage)
	req := anthropic.MessageRequest{
		Model:     t.model,
		MaxTokens: t.maxTokens,
		System:    anthropic.BuildCachedSystemBlocks(systemPrompt),
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf("Target language: %s\n\n%s", lang, payload)},
		},
	}

	resp, err := resilience.Do(ctx, t.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		callCtx, cancel := context.WithTimeout(ctx, t.requestTimeout)
		defer cancel()
		return t.client.CreateMessage(callCtx, req)
	})
	if err != nil {
		zap.L().Warn("translation call failed, returning original",
			zap.String("language", lang),
			zap.Error(err),
		)
		return original
	}
	resp.Usage.Log(t.model, "translate")

	raw := ExtractJSONObject(resp.Text())
	if raw == "" {
		zap.L().Warn("translation reply contained no JSON object", zap.String("language", lang))
		return original
	}

	translated, err := analysis.DecodeTranslated([]byte(raw))
	if err != nil {
		zap.L().Warn("translation reply not decodable, returning original",
			zap.String("language", lang),
			zap.Error(err),
		)
		return original
	}

	return analysis.MergeTranslatedText(original, translated)
}

// ExtractJSONObject pulls the outermost JSON object out of a model
// reply, tolerating markdown code fences and surrounding prose. Returns
// "" when no object is present.
func ExtractJSONObject(reply string) string {
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return ""
	}
	return reply[start : end+1]
}
