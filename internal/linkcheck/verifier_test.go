package linkcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerifier(t *testing.T, trusted []string) *Verifier {
	t.Helper()
	return NewVerifier(Options{
		Prober: NewProber(ProberOptions{Timeout: 2 * time.Second}),
		Trust:  NewTrustList(trusted),
	})
}

func TestVerifyBatch_StatusClassification(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok/long-article-path":
			w.WriteHeader(http.StatusOK)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/gone":
			w.WriteHeader(http.StatusGone)
		case "/blocked":
			w.WriteHeader(http.StatusForbidden)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/ok/long-article-path", Name: "ok"},
		{URL: srv.URL + "/missing", Name: "missing"},
		{URL: srv.URL + "/gone", Name: "gone"},
		{URL: srv.URL + "/blocked", Name: "blocked"},
		{URL: srv.URL + "/broken", Name: "broken"},
	}, 20)

	require.Len(t, results, 5)

	assert.True(t, results[0].IsValid)
	assert.Equal(t, 200, results[0].Status)

	assert.False(t, results[1].IsValid)
	assert.Equal(t, "HTTP 404", results[1].Reason)

	assert.False(t, results[2].IsValid)
	assert.Equal(t, "HTTP 410", results[2].Reason)

	assert.False(t, results[3].IsValid)
	assert.Equal(t, "HTTP 403", results[3].Reason)

	assert.False(t, results[4].IsValid)
	assert.Equal(t, "HTTP 500", results[4].Reason)
}

func TestVerifyBatch_TrustedForbidden(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	// The test server's host is on the trust list, so its 403 is accepted.
	v := testVerifier(t, []string{"127.0.0.1"})
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/wiki/some-protected-article", Name: "x"},
	}, 20)

	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, 403, results[0].Status)
}

func TestVerifyBatch_HeadRejectedFallsBackToGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/head-hostile-article", Name: "x"},
	}, 20)

	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, 200, results[0].Status)
}

func TestVerifyBatch_HeadTransportFailureFallsBackToGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("response writer does not support hijacking")
				return
			}
			if conn, _, err := hj.Hijack(); err == nil {
				_ = conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/connection-dropping-article", Name: "x"},
	}, 20)

	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, 200, results[0].Status)
}

func TestVerifyBatch_GenericRedirect(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/search?q=climate", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/moved", Name: "a", Snippet: "irrelevant words entirely"},
		{URL: srv.URL + "/moved", Name: "b", Snippet: "new climate study released"},
	}, 20)

	require.Len(t, results, 2)

	assert.False(t, results[0].IsValid)
	assert.Equal(t, "Redirected to generic page", results[0].Reason)

	assert.True(t, results[1].IsValid, "snippet token appears in the final URL")
}

func TestVerifyBatch_OrderAndTruncation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	candidates := make([]Candidate, 25)
	for i := range candidates {
		candidates[i] = Candidate{URL: fmt.Sprintf("%s/article-number-%02d", srv.URL, i)}
	}

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), candidates, 20)

	require.Len(t, results, 20, "batch truncated to first 20")
	for i, r := range results {
		assert.Equal(t, candidates[i].URL, r.URL, "result %d out of order", i)
	}
}

func TestVerifyBatch_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	v := NewVerifier(Options{
		Prober: NewProber(ProberOptions{Timeout: 50 * time.Millisecond}),
	})
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/slow-article-path", Name: "x"},
	}, 20)

	require.Len(t, results, 1)
	assert.False(t, results[0].IsValid)
	assert.Equal(t, 0, results[0].Status)
	assert.NotEmpty(t, results[0].Reason)
}

func TestVerifyBatch_MalformedURL(t *testing.T) {
	t.Parallel()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: "://not-a-url", Name: "x"},
	}, 20)

	require.Len(t, results, 1)
	assert.False(t, results[0].IsValid)
	assert.Equal(t, 0, results[0].Status)
	assert.NotEmpty(t, results[0].Reason)
	assert.Equal(t, "://not-a-url", results[0].OriginalURL)
}

func TestVerifyBatch_DuplicateDestinations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/canonical/long-article" {
			http.Redirect(w, r, "/canonical/long-article", http.StatusMovedPermanently)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), []Candidate{
		{URL: srv.URL + "/variant-one-of-article", Name: "a"},
		{URL: srv.URL + "/variant-two-of-article", Name: "b"},
	}, 20)

	require.Len(t, results, 2)
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
	assert.Equal(t, "Duplicate", results[1].Reason)
}

func TestVerifyBatch_Empty(t *testing.T) {
	t.Parallel()

	v := testVerifier(t, nil)
	results := v.VerifyBatch(context.Background(), nil, 20)
	assert.Empty(t, results)
}

func TestVerifyBatch_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	inflight, peak := 0, 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inflight++
		if inflight > peak {
			peak = inflight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inflight--
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	candidates := make([]Candidate, 15)
	for i := range candidates {
		candidates[i] = Candidate{URL: fmt.Sprintf("%s/concurrent-article-%02d", srv.URL, i)}
	}

	v := NewVerifier(Options{
		Prober:    NewProber(ProberOptions{Timeout: 2 * time.Second}),
		BatchSize: 5,
	})
	results := v.VerifyBatch(context.Background(), candidates, 20)

	require.Len(t, results, 15)
	assert.LessOrEqual(t, peak, 5, "no more than one group in flight")
}
