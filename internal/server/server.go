// Package server exposes the verification and translation flows over
// HTTP with the permissive CORS policy the browser client requires.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/credlens/credlens/internal/analysis"
	"github.com/credlens/credlens/internal/linkcheck"
)

// URLVerifier verifies a batch of candidate URLs.
type URLVerifier interface {
	VerifyBatch(ctx context.Context, candidates []linkcheck.Candidate, maxCount int) []linkcheck.Result
}

// DocTranslator renders an analysis document into a target language,
// falling back to the original on failure.
type DocTranslator interface {
	Translate(ctx context.Context, original analysis.AnalysisResult, targetLanguage string) analysis.AnalysisResult
}

// Options configures the HTTP server.
type Options struct {
	Verifier   URLVerifier
	Translator DocTranslator
	MaxURLs    int
}

// Server routes API requests to the verifier and translator.
type Server struct {
	router     chi.Router
	verifier   URLVerifier
	translator DocTranslator
	maxURLs    int
}

// New creates a Server with its routes and middleware wired.
func New(opts Options) *Server {
	if opts.MaxURLs <= 0 {
		opts.MaxURLs = linkcheck.DefaultMaxURLs
	}

	s := &Server{
		verifier:   opts.Verifier,
		translator: opts.Translator,
		maxURLs:    opts.MaxURLs,
	}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/verify-urls", s.handleVerifyURLs)
	r.Post("/translate-analysis", s.handleTranslate)

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()

		next.ServeHTTP(w, r)

		zap.L().Debug("request handled",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// recoverer converts panics into a generic 500 without leaking internals.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zap.L().Error("handler panic",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				respondJSON(w, http.StatusInternalServerError, map[string]string{
					"error": "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
