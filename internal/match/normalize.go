package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRe = regexp.MustCompile(`[^\w\s]`)
	spacesRe  = regexp.MustCompile(`\s+`)

	// Decompose, drop combining marks, recompose. Folds accented
	// location names ("Chhatré") onto their ASCII spelling before the
	// character filter runs.
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize canonicalizes free text for comparison: folds diacritics,
// replaces everything that is not a word character or whitespace with a
// space, collapses whitespace runs, trims and upper-cases.
//
// Normalize is pure and idempotent; empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	if folded, _, err := transform.String(foldMarks, text); err == nil {
		text = folded
	}

	text = nonWordRe.ReplaceAllString(text, " ")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.ToUpper(strings.TrimSpace(text))
}
