package meter

// WordStress is one tokenized word's recognition status and distinct
// stress patterns (one per distinct pronunciation, already deduplicated
// by the caller), each pattern being a string of '0'/'1'/'2' digits in
// pronunciation order.
type WordStress struct {
	Word           string
	Recognized     bool
	StressPatterns []string
}

// Result is the outcome of a meter or syllable validation: whether the
// text matches, and which tokenized words the dictionary did not
// recognize (validation still proceeds past them).
type Result struct {
	Valid             bool
	UnrecognizedWords []string
}

// ValidateMeter checks whether words, in order, can be consumed against
// some concrete stress pattern denoted by meterStr. An unparseable
// meterStr makes the result invalid with no unrecognized words recorded,
// mirroring fuzzy_meter_to_binary_set's own failure.
func ValidateMeter(meterStr string, words []WordStress) Result {
	candidates, err := Parse(meterStr)
	if err != nil {
		return Result{Valid: false}
	}

	var unrecognized []string
	sawUnrecognized := false

	for _, w := range words {
		if !w.Recognized {
			unrecognized = append(unrecognized, w.Word)
			sawUnrecognized = true
			continue
		}

		seen := make(map[string]bool, len(w.StressPatterns))
		var matched []Pattern
		for _, sp := range w.StressPatterns {
			if seen[sp] {
				continue
			}
			seen[sp] = true
			for _, cand := range candidates {
				if rest, ok := consumeStress(sp, cand); ok {
					matched = append(matched, rest)
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
			if len(c) == 0 {
				valid = true
				break
			}
		}
	}
	return Result{Valid: valid, UnrecognizedWords: unrecognized}
}

// consumeStress attempts to match stressPattern against the front of
// candidate, returning the remaining candidate suffix on success.
//
// A monosyllabic word (pattern length 1) consumes exactly one slot
// regardless of its value. A multisyllabic word matches position-by-
// position: '0' only matches slot 0, '1' only matches slot 1, and '2'
// matches slot 1 unless it sits adjacent to a '1' in the same pattern
// (either side), in which case it is ambiguous and matches either slot.
func consumeStress(stressPattern string, candidate Pattern) (Pattern, bool) {
	if len(stressPattern) == 1 {
		if len(candidate) < 1 {
			return nil, false
		}
		return candidate[1:], true
	}

	if len(candidate) < len(stressPattern) {
		return nil, false
	}

	for i := 0; i < len(stressPattern); i++ {
		slot := candidate[i]
		switch stressPattern[i] {
		case '1':
			if slot != 1 {
				return nil, false
			}
		case '2':
			nextIsOne := i+1 < len(stressPattern) && stressPattern[i+1] == '1'
			prevIsOne := i > 0 && stressPattern[i-1] == '1'
			if !nextIsOne && !prevIsOne && slot != 1 {
				return nil, false
			}
		default: // '0'
			if slot != 0 {
				return nil, false
			}
		}
	}
	return candidate[len(stressPattern):], true
}
