package nlp

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Preprocess normalizes the text, tokenizes on whitespace, drops
// stopwords and tokens of length <= 1, and stems the rest. When
// ngrams > 1 it additionally appends contiguous n-grams (2..ngrams)
// of the stemmed token sequence, joined by single spaces.
//
// This variant feeds the intent classifier and the fuzzy index; the
// primary matching path only needs Normalize.
func Preprocess(text string, ngrams int) []string {
	cleaned := Normalize(text)
	if cleaned == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 1 || IsStopword(tok) {
			continue
		}
		tokens = append(tokens, english.Stem(tok, false))
	}

	if len(tokens) == 0 {
		return nil
	}

	out := tokens
	for n := 2; n <= ngrams; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}

	return out
}
