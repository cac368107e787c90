// Package phoneme classifies ARPABET symbols: vowel vs consonant, stress
// digit extraction, and the fixed consonant feature table. It has no
// dependency on any other package in this module and is the leaf that
// everything else (vowel graph, consonant distance, scoring) builds on.
package phoneme

// Symbol is an ARPABET phoneme: a consonant (1-3 letters, no trailing
// digit) or a vowel (2 letters + stress digit 0, 1 or 2).
type Symbol = string

// Gap is the alignment sentinel for an insertion on the other side. It is
// never a valid ARPABET symbol.
const Gap Symbol = "-"

// IsVowel reports whether sym is a vowel symbol. The only test used is
// "last character is a digit" — no other classification heuristic exists.
func IsVowel(sym Symbol) bool {
	if sym == "" {
		return false
	}
	last := sym[len(sym)-1]
	return last >= '0' && last <= '9'
}

// Stress returns the stress digit of a vowel symbol (0, 1 or 2). Calling
// this on a consonant is a programmer error.
func Stress(sym Symbol) byte {
	if !IsVowel(sym) {
		panic("phoneme: Stress called on non-vowel symbol " + sym)
	}
	return sym[len(sym)-1] - '0'
}

// BareVowel returns the symbol with its stress digit removed. Calling this
// on a consonant is a programmer error.
func BareVowel(sym Symbol) Symbol {
	if !IsVowel(sym) {
		panic("phoneme: BareVowel called on non-vowel symbol " + sym)
	}
	return sym[:len(sym)-1]
}
