package humandate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldToken lowercases a token and strips combining marks so that "Mañana"
// and "manana" compare equal. Keyword and month-name matching goes through
// this fold on both sides.
func foldToken(token string) string {
	lowered := strings.ToLower(strings.TrimSpace(token))
	if lowered == "" {
		return ""
	}

	// NFD exposes combining marks, runes.Remove drops them, NFC recomposes
	// whatever is left.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, lowered)
	if err != nil {
		return lowered
	}
	return folded
}

// normalizeCode canonicalizes a language code for registry lookups:
// trimmed, lowercased, underscores replaced with hyphens.
func normalizeCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}
