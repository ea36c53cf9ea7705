package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyScore returns a lexical similarity in [0,1] between two strings.
//
// Both inputs are normalized first. Rules, first match wins:
//   - either side empty -> 0.0
//   - equal -> 1.0
//   - one contains the other -> 0.9 (fixed; partial containment is
//     deliberately favored over graded lexical distance)
//   - otherwise the classic matching-blocks ratio 2*M/T over characters.
func FuzzyScore(a, b string) float64 {
	a = Normalize(a)
	b = Normalize(b)

	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	return difflib.NewMatcher(explode(a), explode(b)).Ratio()
}

// explode splits a string into per-rune elements for character-level
// sequence matching.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
