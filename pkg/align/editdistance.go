// Package align computes weighted edit distance and global alignment over
// phoneme sequences, sharing pkg/scoring's substitution and gap costs
// between the two so their scalar results agree exactly.
package align

import (
	"github.com/scansion/meter/pkg/phoneme"
	"github.com/scansion/meter/pkg/scoring"
)

// ctxSeq pairs a (sub)sequence of phonemes with, for each one, the
// phoneme that immediately precedes it in the original, undivided
// sequence ("" if it is the sequence's first phoneme). scoring.Gap's
// repeated-consonant discount makes the gap cost of a phoneme depend on
// that true predecessor, not on whatever happens to sit one slot to its
// left in whichever slice is currently being scored. Hirschberg's
// divide-and-conquer step both splits sequences (so a right-half
// phoneme's predecessor lives in the left half) and reverses them (so
// array position no longer tracks forward order at all); ctxSeq carries
// the true predecessor through both operations so gapAt never has to
// reconstruct it from position.
type ctxSeq struct {
	syms phoneme.Sequence
	ctx  []phoneme.Symbol
}

// newCtxSeq builds a ctxSeq for a full top-level sequence. leftBoundary
// is the context to use for syms[0]; callers aligning two complete
// sequences pass "" (no predecessor).
func newCtxSeq(syms phoneme.Sequence, leftBoundary phoneme.Symbol) ctxSeq {
	ctx := make([]phoneme.Symbol, len(syms))
	for i := range syms {
		if i == 0 {
			ctx[i] = leftBoundary
		} else {
			ctx[i] = syms[i-1]
		}
	}
	return ctxSeq{syms: syms, ctx: ctx}
}

func (c ctxSeq) len() int { return len(c.syms) }

// slice returns the [lo:hi) sub-sequence. Because ctx is carried
// alongside syms rather than recomputed, the element at the cut point
// keeps its true predecessor even though that predecessor now lies
// outside the returned slice.
func (c ctxSeq) slice(lo, hi int) ctxSeq {
	return ctxSeq{syms: c.syms[lo:hi], ctx: c.ctx[lo:hi]}
}

// reverse returns a newly allocated, order-reversed copy. Context travels
// with its symbol instead of being re-derived from the new position, so
// gapAt keeps reporting each phoneme's true forward predecessor even
// though the sequence is now read back to front.
func (c ctxSeq) reverse() ctxSeq {
	n := len(c.syms)
	syms := make(phoneme.Sequence, n)
	ctx := make([]phoneme.Symbol, n)
	for i := 0; i < n; i++ {
		syms[i] = c.syms[n-1-i]
		ctx[i] = c.ctx[n-1-i]
	}
	return ctxSeq{syms: syms, ctx: ctx}
}

// gapAt returns the gap penalty for element i, using its carried context.
func (c ctxSeq) gapAt(i int) int {
	return scoring.Gap(c.syms[i], c.ctx[i])
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// nwScore returns the last row of the forward Needleman-Wunsch score
// matrix of x against y, computed in two-row linear space. It is the
// core subroutine shared by EditDistance and the Hirschberg Aligner.
func nwScore(x, y ctxSeq) []int {
	n, m := x.len(), y.len()
	prev := make([]int, m+1)
	curr := make([]int, m+1)

	prev[0] = 0
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + y.gapAt(j-1)
	}

	for i := 1; i <= n; i++ {
		curr[0] = prev[0] + x.gapAt(i-1)
		for j := 1; j <= m; j++ {
			del := prev[j] + x.gapAt(i-1)
			ins := curr[j-1] + y.gapAt(j-1)
			sub := prev[j-1] + scoring.Substitution(x.syms[i-1], y.syms[j-1])
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev
}

// EditDistance returns the minimum total score, over all alignments of x
// and y, of substitutions plus context-sensitive gaps. It is the last
// entry of the same linear-space DP row that the Aligner's divide-and-
// conquer step reads from, so the two always agree.
func EditDistance(x, y phoneme.Sequence) int {
	row := nwScore(newCtxSeq(x, ""), newCtxSeq(y, ""))
	return row[len(row)-1]
}
