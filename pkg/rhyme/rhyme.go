// Package rhyme extracts rhyming-tail phonemes from pronunciations and
// scores phonetic similarity across pronunciation-variant cross-products.
// It is a pure core package: dictionary lookups and tokenization are the
// caller's responsibility (see pkg/engine).
package rhyme

import "github.com/scansion/meter/pkg/phoneme"

// Part extracts the rhyming tail of a pronunciation: the suffix starting
// at its last primary-stressed vowel. If the pronunciation has no
// primary-stressed vowel, the suffix starts at its last vowel of any
// stress. A pronunciation with no vowel at all has an empty rhyming part.
func Part(seq phoneme.Sequence) phoneme.Sequence {
	lastPrimary := -1
	lastAnyVowel := -1
	for i, sym := range seq {
		if !phoneme.IsVowel(sym) {
			continue
		}
		lastAnyVowel = i
		if phoneme.Stress(sym) == 1 {
			lastPrimary = i
		}
	}

	switch {
	case lastPrimary >= 0:
		return seq[lastPrimary:]
	case lastAnyVowel >= 0:
		return seq[lastAnyVowel:]
	default:
		return phoneme.Sequence{}
	}
}

// TrimToSyllables trims a rhyming part down to its last l syllables,
// cutting at (and keeping) the l-th vowel counted from the end. A part
// with l or fewer syllables is returned unchanged.
func TrimToSyllables(part phoneme.Sequence, l int) phoneme.Sequence {
	if l <= 0 {
		return phoneme.Sequence{}
	}
	var vowelIdx []int
	for i, sym := range part {
		if phoneme.IsVowel(sym) {
			vowelIdx = append(vowelIdx, i)
		}
	}
	if len(vowelIdx) <= l {
		return part
	}
	cut := vowelIdx[len(vowelIdx)-l]
	return part[cut:]
}

// minSyllableCount returns the minimum syllable count across parts. It
// panics if parts is empty, matching the original's assumption that
// every side of a rhyme comparison has at least one pronunciation.
func minSyllableCount(parts []phoneme.Sequence) int {
	min := parts[0].SyllableCount()
	for _, p := range parts[1:] {
		if n := p.SyllableCount(); n < min {
			min = n
		}
	}
	return min
}

// CompareRhymingParts trims two lists of rhyming parts (one per
// pronunciation variant, from each side of a rhyme comparison) down to
// the shortest syllable length found across both lists, so that every
// returned part is directly comparable.
func CompareRhymingParts(parts1, parts2 []phoneme.Sequence) (trimmed1, trimmed2 []phoneme.Sequence) {
	l := minSyllableCount(parts1)
	if l2 := minSyllableCount(parts2); l2 < l {
		l = l2
	}

	trimmed1 = make([]phoneme.Sequence, len(parts1))
	for i, p := range parts1 {
		trimmed1[i] = TrimToSyllables(p, l)
	}
	trimmed2 = make([]phoneme.Sequence, len(parts2))
	for i, p := range parts2 {
		trimmed2[i] = TrimToSyllables(p, l)
	}
	return trimmed1, trimmed2
}
