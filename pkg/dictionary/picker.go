package dictionary

import "sort"

// Variant pairs a single pronunciation string with a relative
// confidence in [0,1], used to rank multiple candidate pronunciations
// for the same surface word.
type Variant struct {
	Pronunciation string
	Confidence    float64
}

// Picker selects and ranks the pronunciation variants a dictionary
// offers for a surface word. The current strategy is purely
// dictionary-based: it returns every distinct pronunciation reachable
// from the candidate keys, each carrying a heuristic confidence. These
// confidences let a caller bias toward the likeliest variant without
// discarding the rest. Engine.WordToPhones does not use the Picker; it
// returns variants in dictionary order.
type Picker struct{}

// PickAll returns every distinct pronunciation associated with
// candidateKeys, ordered by decreasing confidence.
//
//   - A key whose canonical (upper-cased, trimmed) form equals that of
//     surface scores 1.0, so a key differing only in case is not
//     down-weighted; any other key (for example one reached through a
//     stripped variant suffix) is down-weighted to 0.9.
//   - Additional pronunciations beyond the first one listed for a key
//     are down-weighted slightly (0.95), since CMU-style dictionaries
//     list the most common pronunciation first.
func (Picker) PickAll(dict Dict, candidateKeys []string, surface string) []Variant {
	if len(candidateKeys) == 0 || len(dict) == 0 {
		return nil
	}

	canonicalSurface := Canonical(surface)

	options := make([]Variant, 0, len(candidateKeys))
	seen := make(map[string]struct{})

	for _, key := range candidateKeys {
		prons, ok := dict[key]
		if !ok || len(prons) == 0 {
			continue
		}

		keyWeight := 1.0
		if Canonical(key) != canonicalSurface {
			keyWeight = 0.9
		}

		for i, pron := range prons {
			if pron == "" {
				continue
			}
			if _, dup := seen[pron]; dup {
				continue
			}
			seen[pron] = struct{}{}

			pronWeight := 1.0
			if i > 0 {
				pronWeight = 0.95
			}

			options = append(options, Variant{
				Pronunciation: pron,
				Confidence:    keyWeight * pronWeight,
			})
		}
	}

	if len(options) == 0 {
		return nil
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Confidence == options[j].Confidence {
			return i < j
		}
		return options[i].Confidence > options[j].Confidence
	})

	return options
}
