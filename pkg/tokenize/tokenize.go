// Package tokenize turns raw text into the ordered word tokens the
// Engine facade feeds to the dictionary collaborator and, from there,
// into the core scoring and meter packages.
package tokenize

import (
	"strings"
	"unicode"
)

// Tokenize splits text on Unicode whitespace and em-dashes, strips
// leading and trailing punctuation from each resulting run, and drops
// anything that tokenizes to empty. Internal apostrophes and hyphens
// survive, so "can't" and "drip-dry" remain single tokens.
func Tokenize(text string) []string {
	runs := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '—' || r == '–'
	})

	tokens := make([]string, 0, len(runs))
	for _, run := range runs {
		word := strings.TrimFunc(run, isStrippablePunctuation)
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// isStrippablePunctuation reports whether r should be trimmed from the
// edges of a token. Apostrophes and hyphens are never trimmed, even at
// the edges, so a single-quoted word like 'cat' keeps its quotes; that
// trade-off favors never corrupting a real contraction or compound over
// handling the rarer quoted-word case.
func isStrippablePunctuation(r rune) bool {
	if r == '\'' || r == '-' || r == '’' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
