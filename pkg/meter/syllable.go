package meter

// WordSyllables is one tokenized word's recognition status and distinct
// syllable counts across its pronunciation variants.
type WordSyllables struct {
	Word           string
	Recognized     bool
	SyllableCounts []int
}

// ValidateSyllables checks whether words, in order, can be consumed so
// that their total syllable count exactly equals target.
func ValidateSyllables(target int, words []WordSyllables) Result {
	candidates := []int{target}

	var unrecognized []string
	sawUnrecognized := false

	for _, w := range words {
		if !w.Recognized {
			unrecognized = append(unrecognized, w.Word)
			sawUnrecognized = true
			continue
		}

		seen := make(map[int]bool, len(w.SyllableCounts))
		var matched []int
		for _, n := range w.SyllableCounts {
			if seen[n] {
				continue
			}
			seen[n] = true
			for _, c := range candidates {
				if c >= n {
					matched = append(matched, c-n)
				}
			}
		}

		if len(matched) == 0 {
			return Result{Valid: false, UnrecognizedWords: unrecognized}
		}
		candidates = matched
	}

	valid := !sawUnrecognized
	if valid {
		valid = false
		for _, c := range candidates {
			if c == 0 {
				valid = true
				break
			}
		}
	}
	return Result{Valid: valid, UnrecognizedWords: unrecognized}
}
