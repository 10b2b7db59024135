package linkcheck

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single probe, both the HEAD attempt and any
// GET fallback.
const DefaultTimeout = 5 * time.Second

// ProbeResult is the transport-level outcome of probing one URL.
type ProbeResult struct {
	Status   int
	FinalURL *url.URL
}

// ProberOptions configures the network prober.
type ProberOptions struct {
	UserAgent string
	Timeout   time.Duration
	// HostRate/HostBurst bound probes per host. Zero disables limiting.
	HostRate  int
	HostBurst int
	// Client overrides the default http.Client (tests).
	Client *http.Client
}

// Prober issues liveness probes with realistic browser headers. Many
// hosts reject requests without them.
type Prober struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration

	hostRate  rate.Limit
	hostBurst int
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
}

// NewProber creates a Prober with the given options.
func NewProber(opts ProberOptions) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HostBurst <= 0 {
		opts.HostBurst = opts.HostRate
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     20,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Prober{
		client:    client,
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		hostRate:  rate.Limit(opts.HostRate),
		hostBurst: opts.HostBurst,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Probe checks rawURL with a HEAD request, falling back to GET when the
// server rejects HEAD (403/405) or the HEAD attempt fails at the
// transport level. Redirects are followed; the post-redirect URL and
// final status are returned. The whole exchange is bounded by the
// configured timeout.
func (p *Prober) Probe(ctx context.Context, rawURL string) (ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.waitHost(ctx, rawURL); err != nil {
		return ProbeResult{}, err
	}

	res, err := p.request(ctx, http.MethodHead, rawURL)
	switch {
	case err != nil:
		// Transport failure on HEAD: one GET attempt before giving up.
		res, err = p.request(ctx, http.MethodGet, rawURL)
		if err != nil {
			return ProbeResult{}, err
		}
	case res.Status == http.StatusForbidden || res.Status == http.StatusMethodNotAllowed:
		// Some servers reject HEAD specifically.
		if getRes, getErr := p.request(ctx, http.MethodGet, rawURL); getErr == nil {
			res = getRes
		}
	}

	return res, nil
}

func (p *Prober) request(ctx context.Context, method, rawURL string) (ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return ProbeResult{}, eris.Wrap(err, "linkcheck: create request")
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(req)
	if err != nil {
		return ProbeResult{}, err
	}
	// Drain a little so the connection can be reused, then close.
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)
	_ = resp.Body.Close()

	return ProbeResult{
		Status:   resp.StatusCode,
		FinalURL: resp.Request.URL,
	}, nil
}

func (p *Prober) waitHost(ctx context.Context, rawURL string) error {
	if p.hostRate <= 0 {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil // invalid URLs fail in request() with a better error
	}

	p.mu.Lock()
	lim, ok := p.limiters[u.Hostname()]
	if !ok {
		lim = rate.NewLimiter(p.hostRate, p.hostBurst)
		p.limiters[u.Hostname()] = lim
	}
	p.mu.Unlock()

	return lim.Wait(ctx)
}
