// Package engine is the facade that wires a Dictionary and a Tokenizer
// to the pure core algorithm packages, exposing exactly the public
// operations of the phonetic and metrical analysis engine as Go
// methods. It is the only package in this module allowed to import both
// the ambient collaborators (pkg/dictionary, pkg/tokenize) and the core
// packages (pkg/phoneme, pkg/meter, pkg/rhyme, pkg/align); none of the
// core packages import anything from here.
package engine

import (
	"github.com/scansion/meter/pkg/align"
	"github.com/scansion/meter/pkg/dictionary"
	"github.com/scansion/meter/pkg/meter"
	"github.com/scansion/meter/pkg/phoneme"
	"github.com/scansion/meter/pkg/rhyme"
	"github.com/scansion/meter/pkg/tokenize"
)

// Engine bundles a Dictionary collaborator with a Tokenizer function and
// exposes the full set of public operations over them.
type Engine struct {
	Dictionary dictionary.Dictionary
	Tokenize   func(text string) []string
}

// New builds an Engine with the default whitespace/punctuation
// tokenizer. Callers that need a normalization pipeline ahead of
// tokenization can set Tokenize directly after construction.
func New(dict dictionary.Dictionary) *Engine {
	return &Engine{Dictionary: dict, Tokenize: tokenize.Tokenize}
}

// WordToPhones returns the pronunciation variants for a single word, or
// a *NotFoundError if the dictionary does not recognize it.
func (e *Engine) WordToPhones(word string) ([]string, error) {
	prons, err := e.Dictionary.WordToPhones(word)
	if err != nil {
		return nil, &NotFoundError{Word: word}
	}
	return prons, nil
}

// FuzzyMeterToBinarySet parses a meter string into the set of concrete
// binary stress patterns it denotes.
func (e *Engine) FuzzyMeterToBinarySet(meterStr string) ([]meter.Pattern, error) {
	return meter.Parse(meterStr)
}

// wordStress resolves one tokenized word's dictionary pronunciations
// into a meter.WordStress, deduplicating identical stress patterns
// across its pronunciation variants.
func (e *Engine) wordStress(word string) meter.WordStress {
	prons, err := e.Dictionary.WordToPhones(word)
	if err != nil || len(prons) == 0 {
		return meter.WordStress{Word: word, Recognized: false}
	}

	seen := make(map[string]struct{}, len(prons))
	var patterns []string
	for _, p := range prons {
		pattern := phoneme.ParseSequence(p).StressPattern()
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}
	return meter.WordStress{Word: word, Recognized: true, StressPatterns: patterns}
}

// wordSyllables resolves one tokenized word's dictionary pronunciations
// into a meter.WordSyllables, deduplicating identical syllable counts
// across its pronunciation variants.
func (e *Engine) wordSyllables(word string) meter.WordSyllables {
	prons, err := e.Dictionary.WordToPhones(word)
	if err != nil || len(prons) == 0 {
		return meter.WordSyllables{Word: word, Recognized: false}
	}

	seen := make(map[int]struct{}, len(prons))
	var counts []int
	for _, p := range prons {
		n := phoneme.ParseSequence(p).SyllableCount()
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		counts = append(counts, n)
	}
	return meter.WordSyllables{Word: word, Recognized: true, SyllableCounts: counts}
}

// CheckMeterValidity reports whether text scans against meterStr,
// listing any words the dictionary did not recognize along the way.
func (e *Engine) CheckMeterValidity(text, meterStr string) meter.Result {
	tokens := e.Tokenize(text)
	words := make([]meter.WordStress, len(tokens))
	for i, tok := range tokens {
		words[i] = e.wordStress(tok)
	}
	return meter.ValidateMeter(meterStr, words)
}

// CheckSyllableValidity reports whether text's total syllable count
// equals n, listing any words the dictionary did not recognize along
// the way.
func (e *Engine) CheckSyllableValidity(text string, n int) meter.Result {
	tokens := e.Tokenize(text)
	words := make([]meter.WordSyllables, len(tokens))
	for i, tok := range tokens {
		words[i] = e.wordSyllables(tok)
	}
	return meter.ValidateSyllables(n, words)
}

// lastToken returns the last whitespace-separated token of a line, the
// unit compare_end_line_rhyming_parts and end_rhyme_distance operate on.
func (e *Engine) lastToken(line string) string {
	tokens := e.Tokenize(line)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

// rhymingParts resolves word's pronunciation variants into their
// rhyming-part phoneme sequences (§4.10), or reports word as
// unidentified.
func (e *Engine) rhymingParts(word string) ([]phoneme.Sequence, bool) {
	prons, err := e.Dictionary.WordToPhones(word)
	if err != nil || len(prons) == 0 {
		return nil, false
	}
	parts := make([]phoneme.Sequence, len(prons))
	for i, p := range prons {
		parts[i] = rhyme.Part(phoneme.ParseSequence(p))
	}
	return parts, true
}

// CompareEndLineRhymingParts extracts and trims the rhyming parts of the
// last word of line1 and line2 down to their shared syllable length.
func (e *Engine) CompareEndLineRhymingParts(line1, line2 string) ([]phoneme.Sequence, []phoneme.Sequence, error) {
	word1 := e.lastToken(line1)
	word2 := e.lastToken(line2)

	parts1, ok1 := e.rhymingParts(word1)
	parts2, ok2 := e.rhymingParts(word2)

	var missing []string
	if !ok1 && word1 != "" {
		missing = append(missing, dictionary.Canonical(word1))
	}
	if !ok2 && word2 != "" {
		missing = append(missing, dictionary.Canonical(word2))
	}
	if len(missing) > 0 {
		return nil, nil, &UnidentifiedWordsError{Words: missing}
	}

	trimmed1, trimmed2 := rhyme.CompareRhymingParts(parts1, parts2)
	return trimmed1, trimmed2, nil
}

// MinimumRhymeDistance returns the minimum EditDistance across every
// pair drawn from the cross-product of parts1 and parts2.
func (e *Engine) MinimumRhymeDistance(parts1, parts2 []phoneme.Sequence) int {
	return rhyme.MinimumRhymeDistance(parts1, parts2)
}

// EndRhymeDistance is minimum_rhyme_distance(compare_end_line_rhyming_parts(line1, line2))
// with error propagation.
func (e *Engine) EndRhymeDistance(line1, line2 string) (int, error) {
	parts1, parts2, err := e.CompareEndLineRhymingParts(line1, line2)
	if err != nil {
		return 0, err
	}
	return rhyme.MinimumRhymeDistance(parts1, parts2), nil
}

// wordVariants resolves every tokenized word in text to its pronunciation
// variants, reporting the full list of unrecognized words if any are
// missing so a multi-text comparison can aggregate both sides before
// surfacing a single error.
func (e *Engine) wordVariants(text string) (variants [][]phoneme.Sequence, unrecognized []string) {
	tokens := e.Tokenize(text)
	variants = make([][]phoneme.Sequence, 0, len(tokens))
	for _, tok := range tokens {
		prons, err := e.Dictionary.WordToPhones(tok)
		if err != nil || len(prons) == 0 {
			unrecognized = append(unrecognized, dictionary.Canonical(tok))
			continue
		}
		seqs := make([]phoneme.Sequence, len(prons))
		for i, p := range prons {
			seqs[i] = phoneme.ParseSequence(p)
		}
		variants = append(variants, seqs)
	}
	return variants, unrecognized
}

// textVariants resolves both texts' word variants together, returning a
// single aggregated UnidentifiedWordsError if either side has missing
// words, per spec's "collect all unidentified words across both sides"
// propagation rule.
func (e *Engine) textVariants(text1, text2 string) (v1, v2 [][]phoneme.Sequence, err error) {
	v1, missing1 := e.wordVariants(text1)
	v2, missing2 := e.wordVariants(text2)

	missing := append(append([]string{}, missing1...), missing2...)
	if len(missing) > 0 {
		return nil, nil, &UnidentifiedWordsError{Words: missing}
	}
	return v1, v2, nil
}

// MinimumTextDistance returns the minimum EditDistance over every pair of
// full-line phoneme sequences obtainable from text1's and text2's
// pronunciation-variant cross-products.
func (e *Engine) MinimumTextDistance(text1, text2 string) (int, error) {
	v1, v2, err := e.textVariants(text1, text2)
	if err != nil {
		return 0, err
	}
	return rhyme.MinimumTextDistance(v1, v2), nil
}

// MinimumTextAlignment is MinimumTextDistance's counterpart returning the
// full alignment rather than only its score.
func (e *Engine) MinimumTextAlignment(text1, text2 string) (align.Alignment, error) {
	v1, v2, err := e.textVariants(text1, text2)
	if err != nil {
		return align.Alignment{}, err
	}
	return rhyme.MinimumTextAlignment(v1, v2), nil
}

// LevenshteinDistance is the raw phoneme-sequence edit distance, exposed
// directly for callers that already hold PhonemeSequenceStrings rather
// than text (e.g. two rhyming parts already extracted by
// CompareEndLineRhymingParts).
func (e *Engine) LevenshteinDistance(seq1, seq2 string) int {
	return align.EditDistance(phoneme.ParseSequence(seq1), phoneme.ParseSequence(seq2))
}

// Align is the raw phoneme-sequence alignment counterpart to
// LevenshteinDistance.
func (e *Engine) Align(seq1, seq2 string) align.Alignment {
	return align.Align(phoneme.ParseSequence(seq1), phoneme.ParseSequence(seq2))
}
