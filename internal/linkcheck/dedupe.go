package linkcheck

import (
	"net/url"
	"strings"
)

// DedupeResults downgrades later valid results that resolve to the same
// destination as an earlier valid one. The key is the lowercased
// hostname+path of the final URL, so tracking parameters and fragments
// do not defeat deduplication. Results are modified in place; invalid
// results and results with unparseable final URLs are left untouched.
func DedupeResults(results []Result) {
	seen := make(map[string]bool, len(results))
	for i := range results {
		if !results[i].IsValid {
			continue
		}
		u, err := url.Parse(results[i].FinalURL)
		if err != nil {
			continue
		}
		key := strings.ToLower(u.Hostname() + u.Path)
		if seen[key] {
			results[i].IsValid = false
			results[i].Reason = "Duplicate"
			continue
		}
		seen[key] = true
	}
}
