package linkcheck

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxURLs caps how many candidates a single batch processes.
	DefaultMaxURLs = 20
	// DefaultBatchSize bounds concurrent probes within a batch.
	DefaultBatchSize = 5
)

// Options configures a Verifier.
type Options struct {
	Prober    *Prober
	Trust     *TrustList
	BatchSize int
}

// Verifier classifies batches of candidate URLs. It never returns an
// error: every per-URL failure degrades to an invalid Result.
type Verifier struct {
	prober    *Prober
	trust     *TrustList
	batchSize int
}

// NewVerifier creates a Verifier from options, applying defaults for any
// zero field.
func NewVerifier(opts Options) *Verifier {
	if opts.Prober == nil {
		opts.Prober = NewProber(ProberOptions{})
	}
	if opts.Trust == nil {
		opts.Trust = NewTrustList(nil)
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Verifier{
		prober:    opts.Prober,
		trust:     opts.Trust,
		batchSize: opts.BatchSize,
	}
}

// VerifyBatch verifies up to maxCount candidates and returns one Result
// per processed candidate, in input order. Probes run in groups of
// BatchSize; a group is awaited fully before the next starts, bounding
// peak outbound connections. A final pass downgrades duplicate
// destinations.
func (v *Verifier) VerifyBatch(ctx context.Context, candidates []Candidate, maxCount int) []Result {
	if maxCount <= 0 {
		maxCount = DefaultMaxURLs
	}
	if len(candidates) > maxCount {
		candidates = candidates[:maxCount]
	}

	batchID := uuid.NewString()
	results := make([]Result, len(candidates))

	for start := 0; start < len(candidates); start += v.batchSize {
		end := min(start+v.batchSize, len(candidates))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = v.verifyOne(gctx, candidates[i])
				return nil
			})
		}
		_ = g.Wait() // verifyOne never errors
	}

	DedupeResults(results)

	valid := 0
	for _, r := range results {
		if r.IsValid {
			valid++
		}
	}
	zap.L().Info("link batch verified",
		zap.String("batch_id", batchID),
		zap.Int("candidates", len(candidates)),
		zap.Int("valid", valid),
	)

	return results
}

// verifyOne probes a single candidate and classifies the outcome. All
// failures, including malformed URLs and timeouts, produce an invalid
// Result with status 0 and a diagnostic reason.
func (v *Verifier) verifyOne(ctx context.Context, c Candidate) Result {
	res := Result{URL: c.URL, OriginalURL: c.URL}

	probe, err := v.prober.Probe(ctx, c.URL)
	if err != nil {
		res.Reason = reasonFromError(err)
		zap.L().Debug("probe failed",
			zap.String("url", c.URL),
			zap.Error(err),
		)
		return res
	}

	res.Status = probe.Status
	res.FinalURL = probe.FinalURL.String()

	if isDeadStatus(probe.Status) {
		res.Reason = fmt.Sprintf("HTTP %d", probe.Status)
		return res
	}

	acceptable := (probe.Status >= 200 && probe.Status < 400) ||
		(probe.Status == http.StatusForbidden && v.trust.IsTrusted(probe.FinalURL.Hostname()))
	if !acceptable {
		res.Reason = fmt.Sprintf("HTTP %d", probe.Status)
		return res
	}

	// A redirect to a landing or search page is only kept when the
	// snippet still points at the destination.
	if IsGenericPath(probe.FinalURL.Path) && !snippetMatchesURL(c.Snippet, res.FinalURL) {
		res.Reason = "Redirected to generic page"
		return res
	}

	res.IsValid = true
	return res
}

// isDeadStatus reports statuses that always mean the link is unusable,
// trusted host or not.
func isDeadStatus(status int) bool {
	switch {
	case status == http.StatusNotFound,
		status == http.StatusGone,
		status == http.StatusTooManyRequests,
		status >= 500:
		return true
	}
	return false
}

func reasonFromError(err error) string {
	if err == nil || err.Error() == "" {
		return "Network error"
	}
	return err.Error()
}
