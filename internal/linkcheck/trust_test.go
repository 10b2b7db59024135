package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustList_IsTrusted(t *testing.T) {
	t.Parallel()
	trust := NewTrustList(nil)

	tests := []struct {
		name    string
		host    string
		trusted bool
	}{
		{"wikipedia subdomain", "en.wikipedia.org", true},
		{"wikipedia apex", "wikipedia.org", true},
		{"reuters", "www.reuters.com", true},
		{"ap news", "apnews.com", true},
		{"gov suffix", "www.cdc.gov", true},
		{"edu suffix", "news.mit.edu", true},
		{"who", "www.who.int", true},
		{"random blog", "myblog.example.com", false},
		{"lookalike suffix", "notwikipedia.org", false},
		{"lookalike prefix", "wikipedia.org.evil.com", false},
		{"empty", "", false},
		{"trailing dot", "en.wikipedia.org.", true},
		{"case insensitive", "EN.WIKIPEDIA.ORG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.trusted, trust.IsTrusted(tt.host))
		})
	}
}

func TestTrustList_Extra(t *testing.T) {
	t.Parallel()
	trust := NewTrustList([]string{"example.org"})

	assert.True(t, trust.IsTrusted("example.org"))
	assert.True(t, trust.IsTrusted("sub.example.org"))
	assert.False(t, trust.IsTrusted("example.com"))

	// Built-in table still applies.
	assert.True(t, trust.IsTrusted("en.wikipedia.org"))
}

func TestTrustList_NilReceiver(t *testing.T) {
	t.Parallel()
	var trust *TrustList
	assert.True(t, trust.IsTrusted("en.wikipedia.org"))
	assert.False(t, trust.IsTrusted("example.com"))
}
