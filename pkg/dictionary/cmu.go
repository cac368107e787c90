package dictionary

import (
	"bufio"
	"bytes"
	"strings"
)

// sniffCMU detects the CMU Pronouncing Dictionary's text layout:
//
//	WORD  PH ON1 EME0 S
//	WORD(2)  ALT ER0 N AH0 T IH0 V
//
// Entries are whitespace-separated, the first field is the word (with an
// optional "(n)" variant suffix), and the remaining fields are uppercase
// ARPABET symbols.
func sniffCMU(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	scanner := bufio.NewScanner(bytes.NewReader(sniff))
	checked := 0
	for scanner.Scan() && checked < 3 {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return false
		}
		for _, sym := range fields[1:] {
			if !looksLikeARPABET(sym) {
				return false
			}
		}
		checked++
	}
	return checked > 0
}

func looksLikeARPABET(sym string) bool {
	if sym == "" {
		return false
	}
	for _, r := range sym {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '2') {
			return false
		}
	}
	return true
}

// parseCMULine parses one CMU-format line into its base word (variant
// suffixes like "(2)" stripped) and its single pronunciation, expressed
// as the space-separated ARPABET string the core's PhonemeSequence
// expects.
func parseCMULine(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, nil
	}
	word := stripVariantSuffix(fields[0])
	pron := strings.Join(fields[1:], " ")
	return word, []string{pron}, nil
}

// stripVariantSuffix removes a CMU-style "(n)" alternate-pronunciation
// marker from a word, e.g. "READ(2)" -> "READ".
func stripVariantSuffix(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}
