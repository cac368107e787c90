package phoneme

// Monophthongs is the fixed set of the ten CMU Pronouncing Dictionary
// monophthong vowels, stress digit stripped.
var Monophthongs = []string{"AA", "AE", "AH", "AO", "EH", "ER", "IH", "IY", "UH", "UW"}

// Diphthongs is the fixed set of the five diphthong vowels, stress digit
// stripped.
var Diphthongs = []string{"AW", "AY", "EY", "OW", "OY"}

// Vowels is Monophthongs followed by Diphthongs: the full 15-vowel
// inventory this system reasons about.
var Vowels = append(append([]string{}, Monophthongs...), Diphthongs...)

var vowelSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Vowels))
	for _, v := range Vowels {
		m[v] = struct{}{}
	}
	return m
}()

// IsKnownBareVowel reports whether v (without a stress digit) is one of
// the 15 vowels this system knows about.
func IsKnownBareVowel(v string) bool {
	_, ok := vowelSet[v]
	return ok
}
