// Package dictionary provides the word-to-pronunciations lookup the core
// phonetic engine consumes, plus a pluggable Loader architecture for
// populating it from CMU-style text, a binary gob cache, or remote
// compressed sources.
package dictionary

import (
	"fmt"
	"strings"
)

// Word is an orthographic expression. Lookups are case-insensitive;
// uppercase is the canonical stored form.
type Word = string

// Dictionary is the interface the Engine facade consumes: a pluggable
// word-to-pronunciations lookup. Dict is the concrete in-memory
// implementation assembled by the Loader family in this package, but
// any type satisfying this single method (a remote lookup service, a
// layered fallback chain) can stand in for it.
type Dictionary interface {
	WordToPhones(word string) ([]string, error)
}

// Dict maps canonicalized words to their pronunciation variants, each a
// space-separated ARPABET phoneme string.
type Dict map[Word][]string

// Canonical upper-cases and trims a word the way entries are stored and
// looked up, matching the dictionary collaborator's case-insensitive
// contract.
func Canonical(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Lookup returns the pronunciation variants for word, and whether the
// word was found at all.
func (d Dict) Lookup(word string) ([]string, bool) {
	prons, ok := d[Canonical(word)]
	return prons, ok
}

// WordToPhones implements Dictionary. An unrecognized word is reported
// as an error rather than a silent empty slice, so the Engine facade can
// aggregate unrecognized words the way spec.md's UnidentifiedWords error
// requires.
func (d Dict) WordToPhones(word string) ([]string, error) {
	prons, ok := d.Lookup(word)
	if !ok || len(prons) == 0 {
		return nil, fmt.Errorf("unrecognized word: %s", Canonical(word))
	}
	return prons, nil
}

// Representation holds the mutable state threaded through the loading
// pipeline: the dictionary entries under construction, and bookkeeping
// for duplicate suppression and MergeMode semantics across sources.
type Representation struct {
	Entries        Dict
	SeenWordPron   map[string]struct{}
	PreloadedWords map[string]struct{}
}

// NewRepresentation creates an empty Representation with reasonable
// initial capacities for a CMU-sized pronouncing dictionary.
func NewRepresentation() *Representation {
	return &Representation{
		Entries:        make(Dict, 1<<17),
		SeenWordPron:   make(map[string]struct{}, 1<<18),
		PreloadedWords: make(map[string]struct{}),
	}
}
