// Package consonantdist computes an integer distance between two ARPABET
// consonants from their articulatory features (manner, place, voicing,
// sibilance), with a short list of hand-enumerated cross-manner exceptions.
package consonantdist

import (
	"fmt"

	"github.com/scansion/meter/pkg/phoneme"
)

const (
	voicedPenalty                       = 1
	unrelatedPenalty                    = 10
	rlDistance                          = 1
	wvDistance                          = 2
	affricateSibilantFricativePenalty   = 1
	affricatePlosivePenalty             = 2
	affricateNonSibilantFricativePenalty = 2
)

func isWOrV(sym string) bool {
	return sym == "W" || sym == "V"
}

func isApproximantLike(m phoneme.Manner) bool {
	return m == phoneme.Approximant || m == phoneme.LateralApproximant
}

func isRorL(sym string) bool {
	return sym == "R" || sym == "L"
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

// Distance returns the integer distance between two ARPABET consonant
// symbols. Querying an unknown or non-consonant symbol is a programmer
// error, matching the fixed, hand-authored nature of the feature table.
func Distance(sym1, sym2 string) int {
	c1 := phoneme.GetConsonant(sym1)
	c2 := phoneme.GetConsonant(sym2)

	// 1. Identical symbol.
	if c1.Symbol == c2.Symbol {
		return 0
	}

	// 2. W & V, either order.
	if isWOrV(c1.Symbol) && isWOrV(c2.Symbol) {
		return wvDistance
	}

	// 3. Approximant / lateral-approximant vs. same.
	if isApproximantLike(c1.Manner) && isApproximantLike(c2.Manner) {
		if isRorL(c1.Symbol) && isRorL(c2.Symbol) {
			return rlDistance
		}
		return absDiff(c1.Place, c2.Place)
	}

	// 4. Same manner.
	if c1.Manner == c2.Manner {
		d := absDiff(c1.Place, c2.Place)
		if c1.Voiced != c2.Voiced {
			d += voicedPenalty
		}
		return d
	}

	// 5. Affricate vs. fricative/plosive.
	affricate, other, ok := affricateAndOther(c1, c2)
	if ok {
		d := absDiff(c1.Place, c2.Place)
		if c1.Voiced != c2.Voiced {
			d += voicedPenalty
		}
		switch {
		case other.Manner == phoneme.Fricative && other.Sibilant:
			return d + affricateSibilantFricativePenalty
		case other.Manner == phoneme.Plosive:
			return d + affricatePlosivePenalty
		case other.Manner == phoneme.Fricative && !other.Sibilant:
			return d + affricateNonSibilantFricativePenalty
		default:
			panic(fmt.Sprintf("consonantdist: unreachable affricate branch for %q/%q", affricate.Symbol, other.Symbol))
		}
	}

	// 6. Otherwise, unrelated manners.
	return unrelatedPenalty
}

// affricateAndOther reports whether exactly one of c1, c2 is an affricate
// and the other is a fricative or plosive, returning (affricate, other, true)
// in that case.
func affricateAndOther(c1, c2 phoneme.Consonant) (phoneme.Consonant, phoneme.Consonant, bool) {
	isFricativeOrPlosive := func(c phoneme.Consonant) bool {
		return c.Manner == phoneme.Fricative || c.Manner == phoneme.Plosive
	}
	switch {
	case c1.Manner == phoneme.Affricate && isFricativeOrPlosive(c2):
		return c1, c2, true
	case c2.Manner == phoneme.Affricate && isFricativeOrPlosive(c1):
		return c2, c1, true
	default:
		return phoneme.Consonant{}, phoneme.Consonant{}, false
	}
}
