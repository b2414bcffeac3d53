package nlp

// English stopwords dropped during preprocessing. Tokens of length <= 1
// are dropped regardless, so single-letter words are not listed.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "can": {}, "do": {}, "does": {}, "for": {},
	"from": {}, "get": {}, "has": {}, "have": {}, "how": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "please": {}, "that": {}, "the": {},
	"their": {}, "this": {}, "to": {}, "want": {}, "was": {}, "we": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {}, "why": {},
	"will": {}, "with": {}, "you": {}, "your": {},
}

// IsStopword reports whether the token is in the fixed stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
