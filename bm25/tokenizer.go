package bm25

import "strings"

// stopWords are excluded from both indexing and queries.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {},
}

// Tokenize lowercases text, replaces anything outside [a-z0-9 whitespace]
// with a space, splits on whitespace, and drops single-character tokens and
// stop words.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(sb.String()) {
		if len(tok) <= 1 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// termFrequencies counts token occurrences.
func termFrequencies(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}
