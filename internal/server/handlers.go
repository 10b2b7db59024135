package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/credlens/credlens/internal/analysis"
	"github.com/credlens/credlens/internal/linkcheck"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVerifyURLs verifies a batch of outbound links. The only request
// failure is a malformed body; per-URL failures come back as invalid
// entries in the result list.
func (s *Server) handleVerifyURLs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URLs json.RawMessage `json:"urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.URLs) == 0 || bytes.Equal(req.URLs, []byte("null")) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "urls array is required"})
		return
	}

	var candidates []linkcheck.Candidate
	if err := json.Unmarshal(req.URLs, &candidates); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "urls must be an array"})
		return
	}
	if len(candidates) == 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "urls array is required"})
		return
	}

	results := s.verifier.VerifyBatch(r.Context(), candidates, s.maxURLs)
	if results == nil {
		results = []linkcheck.Result{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"results": results})
}

// handleTranslate translates the text fields of an analysis document.
// Translation failure is not an error: the original document comes back.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AnalysisData   json.RawMessage `json:"analysisData"`
		TargetLanguage string          `json:"targetLanguage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.AnalysisData) == 0 || bytes.Equal(req.AnalysisData, []byte("null")) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "analysisData is required"})
		return
	}

	var original analysis.AnalysisResult
	if err := json.Unmarshal(req.AnalysisData, &original); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "analysisData is not a valid analysis document"})
		return
	}

	merged := s.translator.Translate(r.Context(), original, req.TargetLanguage)
	respondJSON(w, http.StatusOK, merged)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}
