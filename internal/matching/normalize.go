// Package matching scores normalized job postings against a candidate
// profile with a fixed, deterministic heuristic. Every function here is pure:
// no I/O, no shared mutable state, safe for concurrent callers.
package matching

import "strings"

var apostrophes = strings.NewReplacer("‘", "'", "’", "'")

// Normalize lowers the text and reduces it to the characters the scorers
// compare on: a-z, 0-9 and "+.#/-". Everything else becomes a space and
// whitespace runs collapse, so tech tokens like "c#", "c++" and "node.js"
// survive intact.
func Normalize(text string) string {
	text = strings.ToLower(apostrophes.Replace(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '+', r == '.', r == '#', r == '/', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text into a set of tokens, dropping stop words.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(Normalize(text)) {
		if stopWords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}
