package phoneme

import "strings"

// Sequence is an ordered list of phonemes. The empty sequence is valid.
type Sequence []Symbol

// ParseSequence splits a space-separated phoneme string into a Sequence,
// collapsing leading/trailing whitespace and treating a blank string as
// the empty sequence.
func ParseSequence(s string) Sequence {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sequence{}
	}
	return strings.Fields(s)
}

// String renders a Sequence back to its space-separated external form.
func (s Sequence) String() string {
	return strings.Join(s, " ")
}

// StressPattern returns the concatenated stress digits of a Sequence's
// vowels, in order, e.g. "M AA1 D ER0 N AY2 Z D" -> "102".
func (s Sequence) StressPattern() string {
	var b strings.Builder
	for _, sym := range s {
		if IsVowel(sym) {
			b.WriteByte('0' + Stress(sym))
		}
	}
	return b.String()
}

// SyllableCount returns the number of vowel phonemes in the sequence.
func (s Sequence) SyllableCount() int {
	n := 0
	for _, sym := range s {
		if IsVowel(sym) {
			n++
		}
	}
	return n
}
