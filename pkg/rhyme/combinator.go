package rhyme

import (
	"github.com/scansion/meter/pkg/align"
	"github.com/scansion/meter/pkg/phoneme"
)

// MinimumRhymeDistance returns the minimum EditDistance over every pair
// drawn from the cross-product of parts1 and parts2.
func MinimumRhymeDistance(parts1, parts2 []phoneme.Sequence) int {
	best := 0
	first := true
	for _, p1 := range parts1 {
		for _, p2 := range parts2 {
			d := align.EditDistance(p1, p2)
			if first || d < best {
				best = d
				first = false
			}
		}
	}
	return best
}

// CrossProductLines generates every full-line phoneme sequence obtainable
// by choosing one pronunciation variant per word, in word order, with
// word boundaries flattened into a single sequence. wordVariants[i] holds
// the pronunciation variants available for the i-th tokenized word.
func CrossProductLines(wordVariants [][]phoneme.Sequence) []phoneme.Sequence {
	lines := []phoneme.Sequence{{}}
	for _, variants := range wordVariants {
		next := make([]phoneme.Sequence, 0, len(lines)*len(variants))
		for _, prefix := range lines {
			for _, v := range variants {
				joined := make(phoneme.Sequence, 0, len(prefix)+len(v))
				joined = append(joined, prefix...)
				joined = append(joined, v...)
				next = append(next, joined)
			}
		}
		lines = next
	}
	return lines
}

// MinimumTextDistance returns the minimum EditDistance over every pair of
// full-line phoneme sequences drawn from the cross-products of
// wordVariants1 and wordVariants2.
func MinimumTextDistance(wordVariants1, wordVariants2 [][]phoneme.Sequence) int {
	lines1 := CrossProductLines(wordVariants1)
	lines2 := CrossProductLines(wordVariants2)

	best := 0
	first := true
	for _, l1 := range lines1 {
		for _, l2 := range lines2 {
			d := align.EditDistance(l1, l2)
			if first || d < best {
				best = d
				first = false
			}
		}
	}
	return best
}

// MinimumTextAlignment is MinimumTextDistance's counterpart returning the
// full alignment rather than only its score. Ties are broken in favor of
// the first-encountered pair, matching cross-product enumeration order.
func MinimumTextAlignment(wordVariants1, wordVariants2 [][]phoneme.Sequence) align.Alignment {
	lines1 := CrossProductLines(wordVariants1)
	lines2 := CrossProductLines(wordVariants2)

	var best align.Alignment
	first := true
	for _, l1 := range lines1 {
		for _, l2 := range lines2 {
			a := align.Align(l1, l2)
			if first || a.Score < best.Score {
				best = a
				first = false
			}
		}
	}
	return best
}
