package domain

import "strings"

// NormalizeLemma prepares a lemma for vocabulary and exclusion lookups:
// trims surrounding whitespace and lowercases. Umlauts, ß, hyphens, and
// apostrophes are preserved.
func NormalizeLemma(lemma string) string {
	return strings.ToLower(strings.TrimSpace(lemma))
}
