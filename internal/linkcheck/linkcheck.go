// Package linkcheck probes outbound links discovered in analyzed content
// and classifies each one as alive and relevant, or invalid with a reason.
package linkcheck

// Candidate is a single outbound link pending verification, with the
// title and snippet it was surfaced with.
type Candidate struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	Snippet string `json:"snippet"`
}

// Result is the verification outcome for one Candidate. Results are
// order-preserving with the input batch.
type Result struct {
	URL         string `json:"url"`
	OriginalURL string `json:"originalUrl"`
	IsValid     bool   `json:"isValid"`
	FinalURL    string `json:"finalUrl,omitempty"`
	Status      int    `json:"status"`
	Reason      string `json:"reason,omitempty"`
}
