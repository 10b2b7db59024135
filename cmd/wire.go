package main

import (
	"github.com/credlens/credlens/internal/linkcheck"
	"github.com/credlens/credlens/internal/resilience"
	"github.com/credlens/credlens/internal/translate"
	"github.com/credlens/credlens/pkg/anthropic"
)

func newVerifier() *linkcheck.Verifier {
	return linkcheck.NewVerifier(linkcheck.Options{
		Prober: linkcheck.NewProber(linkcheck.ProberOptions{
			UserAgent: cfg.Verify.UserAgent,
			Timeout:   cfg.Verify.Timeout(),
			HostRate:  cfg.Verify.HostRate,
			HostBurst: cfg.Verify.HostBurst,
		}),
		Trust:     linkcheck.NewTrustList(cfg.Verify.ExtraTrusted),
		BatchSize: cfg.Verify.BatchSize,
	})
}

func newTranslator() *translate.Translator {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Translate.MaxAttempts
	retry.InitialBackoff = cfg.Translate.InitialBackoff()

	return translate.New(translate.Options{
		Client:         anthropic.NewClient(cfg.Anthropic.Key),
		Model:          cfg.Anthropic.Model,
		MaxTokens:      cfg.Anthropic.MaxTokens,
		Retry:          retry,
		RequestTimeout: cfg.Translate.RequestTimeout(),
	})
}
