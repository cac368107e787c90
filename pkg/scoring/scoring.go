// Package scoring implements the shared substitution and gap scoring used
// by both EditDistance and the Hirschberg Aligner. It is a pure,
// dependency-free leaf with respect to the alignment algorithms: they both
// import it, it never imports them.
package scoring

import (
	"github.com/scansion/meter/pkg/consonantdist"
	"github.com/scansion/meter/pkg/phoneme"
	"github.com/scansion/meter/pkg/vowelgraph"
)

const (
	VowelCoefficient         = 5
	VowelStressPenalty       = 1
	VowelToConsonantMismatch = 100
	VowelIndelPenalty        = 20
	ConsonantIndelPenalty    = 5
	RepeatedConsonantPenalty = 1
)

// Substitution returns the cost of substituting phoneme a for phoneme b.
func Substitution(a, b phoneme.Symbol) int {
	if a == b {
		return 0
	}

	aVowel, bVowel := phoneme.IsVowel(a), phoneme.IsVowel(b)

	switch {
	case aVowel && bVowel:
		bareA, bareB := phoneme.BareVowel(a), phoneme.BareVowel(b)
		if bareA == bareB {
			// Same vowel quality, different stress.
			return VowelStressPenalty
		}
		score := vowelgraph.Distance(bareA, bareB) * VowelCoefficient
		if phoneme.Stress(a) != phoneme.Stress(b) {
			score += VowelStressPenalty
		}
		return score

	case aVowel != bVowel:
		return VowelToConsonantMismatch

	default:
		return consonantdist.Distance(a, b)
	}
}

// Gap returns the cost of inserting or deleting phoneme sym, given the
// phoneme immediately preceding it within its own sequence (the empty
// string if sym is the first phoneme of its sequence).
//
// Vowel gaps are penalized heavily because they change syllable count.
// A consonant gap that repeats the immediately preceding consonant in its
// own sequence is treated as nearly free, allowing cross-word
// re-segmentation such as "pulley" vs. "full lee".
func Gap(sym phoneme.Symbol, prev phoneme.Symbol) int {
	if phoneme.IsVowel(sym) {
		return VowelIndelPenalty
	}
	if prev != "" && sym == prev {
		return RepeatedConsonantPenalty
	}
	return ConsonantIndelPenalty
}
