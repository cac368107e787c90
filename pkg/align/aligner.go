package align

import (
	"github.com/scansion/meter/pkg/phoneme"
	"github.com/scansion/meter/pkg/scoring"
)

// Alignment is the result of aligning two phoneme sequences: X and Y hold
// the two rows of the alignment, padded with phoneme.Gap where one side
// has nothing to match, and Score is the total weighted edit distance,
// identical to what EditDistance(x, y) would return for the inputs.
type Alignment struct {
	X     phoneme.Sequence
	Y     phoneme.Sequence
	Score int
}

// Align computes the global alignment of x and y using Hirschberg's
// linear-space divide-and-conquer algorithm. Ties between substitution,
// deletion from x, and insertion from y are broken in that order:
// substitution first, then delete-x, then insert-y.
func Align(x, y phoneme.Sequence) Alignment {
	return alignCtx(newCtxSeq(x, ""), newCtxSeq(y, ""))
}

// alignCtx is Align's recursive worker. x and y carry each phoneme's true
// forward-order predecessor alongside it (see ctxSeq), so splitting or
// reversing either side for the Hirschberg midpoint search never loses
// track of context the way plain phoneme.Sequence slicing would.
func alignCtx(x, y ctxSeq) Alignment {
	n, m := x.len(), y.len()

	switch {
	case n == 0:
		a := Alignment{X: make(phoneme.Sequence, m), Y: append(phoneme.Sequence{}, y.syms...)}
		for i := range a.X {
			a.X[i] = phoneme.Gap
		}
		for j := 0; j < m; j++ {
			a.Score += y.gapAt(j)
		}
		return a

	case m == 0:
		a := Alignment{X: append(phoneme.Sequence{}, x.syms...), Y: make(phoneme.Sequence, n)}
		for j := range a.Y {
			a.Y[j] = phoneme.Gap
		}
		for i := 0; i < n; i++ {
			a.Score += x.gapAt(i)
		}
		return a

	case n == 1 || m == 1:
		return needlemanWunsch(x, y)
	}

	xmid := n / 2
	xToMid := x.slice(0, xmid)
	xFromMid := x.slice(xmid, n)

	scoreL := nwScore(xToMid, y)
	scoreR := nwScore(xFromMid.reverse(), y.reverse())
	scoreRRev := reverseInts(scoreR)

	ymid, best := argminSum(scoreL, scoreRRev)

	yToMid := y.slice(0, ymid)
	yFromMid := y.slice(ymid, m)

	left := alignCtx(xToMid, yToMid)
	right := alignCtx(xFromMid, yFromMid)

	return Alignment{
		X:     append(append(phoneme.Sequence{}, left.X...), right.X...),
		Y:     append(append(phoneme.Sequence{}, left.Y...), right.Y...),
		Score: best,
	}
}

// reverseInts returns a newly allocated, reversed copy of a score row.
func reverseInts(row []int) []int {
	out := make([]int, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}

// argminSum returns the index minimizing a[i]+b[i] and that minimum sum,
// preferring the first index on ties.
func argminSum(a, b []int) (int, int) {
	best := a[0] + b[0]
	bestIdx := 0
	for i := 1; i < len(a); i++ {
		if s := a[i] + b[i]; s < best {
			best = s
			bestIdx = i
		}
	}
	return bestIdx, best
}

// needlemanWunsch computes the full O(n*m) score matrix and a full
// traceback, used by Align as the base case when either side has length
// 1 (and internally whenever a complete alignment, not just a score row,
// is required for a small side).
func needlemanWunsch(x, y ctxSeq) Alignment {
	n, m := x.len(), y.len()
	M := make([][]int, n+1)
	for i := range M {
		M[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		M[i][0] = M[i-1][0] + x.gapAt(i-1)
	}
	for j := 1; j <= m; j++ {
		M[0][j] = M[0][j-1] + y.gapAt(j-1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := M[i-1][j-1] + scoring.Substitution(x.syms[i-1], y.syms[j-1])
			del := M[i-1][j] + x.gapAt(i-1)
			ins := M[i][j-1] + y.gapAt(j-1)
			M[i][j] = min3(sub, del, ins)
		}
	}

	var ax, ay phoneme.Sequence
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && M[i][j] == M[i-1][j-1]+scoring.Substitution(x.syms[i-1], y.syms[j-1]):
			ax = append(phoneme.Sequence{x.syms[i-1]}, ax...)
			ay = append(phoneme.Sequence{y.syms[j-1]}, ay...)
			i--
			j--
		case i > 0 && M[i][j] == M[i-1][j]+x.gapAt(i-1):
			ax = append(phoneme.Sequence{x.syms[i-1]}, ax...)
			ay = append(phoneme.Sequence{phoneme.Gap}, ay...)
			i--
		default:
			ax = append(phoneme.Sequence{phoneme.Gap}, ax...)
			ay = append(phoneme.Sequence{y.syms[j-1]}, ay...)
			j--
		}
	}

	return Alignment{X: ax, Y: ay, Score: M[n][m]}
}
