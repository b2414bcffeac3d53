// Package nlp holds the text normalization used by the query-resolution
// pipeline. Keyword matching and index building both operate on the
// output of Normalize, so entries and queries are always compared in
// the same canonical form.
package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the text, replaces punctuation with spaces,
// collapses runs of whitespace and trims. Empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = nonWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
