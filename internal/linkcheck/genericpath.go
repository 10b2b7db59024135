package linkcheck

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// genericPathNames are path segments that indicate a landing, search, or
// error page rather than content about a specific claim.
var genericPathNames = map[string]bool{
	"home":       true,
	"index":      true,
	"index.html": true,
	"index.php":  true,
	"search":     true,
	"error":      true,
	"404":        true,
	"not-found":  true,
	"notfound":   true,
}

// IsGenericPath reports whether a URL path looks like a generic landing
// page: a known landing/search/error segment, or a path that reduces to
// at most one short segment.
func IsGenericPath(urlPath string) bool {
	urlPath = strings.ToLower(urlPath)

	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(urlPath, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return true
	}
	if len(segments) == 1 && len(segments[0]) <= 3 {
		return true
	}

	for _, seg := range segments {
		if genericPathNames[seg] {
			return true
		}
	}
	return false
}

// minTokenLen filters out short stopword-like tokens from snippets.
const minTokenLen = 5

// SnippetTokens extracts lowercased alphanumeric tokens (accented Latin
// included) longer than four characters from snippet text. The text is
// NFC-normalized first so composed and decomposed accents tokenize the
// same way.
func SnippetTokens(snippet string) []string {
	normalized := norm.NFC.String(strings.ToLower(snippet))

	var tokens []string
	var b strings.Builder
	flush := func() {
		if tok := b.String(); utf8.RuneCountInString(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
		b.Reset()
	}

	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// snippetMatchesURL reports whether any snippet token appears as a
// substring of the final URL. Used to keep generic-looking redirect
// destinations that still reference the claim.
func snippetMatchesURL(snippet, finalURL string) bool {
	target := strings.ToLower(finalURL)
	for _, tok := range SnippetTokens(snippet) {
		if strings.Contains(target, tok) {
			return true
		}
	}
	return false
}
