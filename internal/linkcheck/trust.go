package linkcheck

import "strings"

// trustedDomains are high-authority hosts that aggressively serve 403 to
// non-browser clients. A 403 from one of these is treated as alive rather
// than dead.
var trustedDomains = []string{
	"wikipedia.org",
	"britannica.com",
	"reuters.com",
	"apnews.com",
	"afp.com",
	"bbc.com",
	"bbc.co.uk",
	"nature.com",
	"science.org",
	"sciencedirect.com",
	"who.int",
	"un.org",
	"europa.eu",
	"nejm.org",
	"thelancet.com",
}

// trustedSuffixes are TLD-level suffixes treated as authoritative.
var trustedSuffixes = []string{
	".gov",
	".edu",
}

// TrustList decides whether a hostname belongs to a known-authoritative
// publisher. The zero value uses the built-in domain table.
type TrustList struct {
	extra []string
}

// NewTrustList returns a TrustList extended with additional trusted domains.
func NewTrustList(extra []string) *TrustList {
	return &TrustList{extra: extra}
}

// IsTrusted reports whether host exactly matches or is a subdomain of a
// trusted domain, or carries a trusted TLD suffix.
func (t *TrustList) IsTrusted(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}

	for _, suffix := range trustedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}

	domains := trustedDomains
	if t != nil && len(t.extra) > 0 {
		domains = append(append([]string{}, trustedDomains...), t.extra...)
	}
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
