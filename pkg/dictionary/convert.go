package dictionary

import (
	"encoding/json"
	"os"
	"strings"
)

// ConversionRule is a JSON-configurable symbol substitution table for
// bridging a foreign phonetic notation (IPA, SAMPA, a house transcription
// scheme) into the ARPABET symbols the core algorithms operate on. It is
// a bridge of last resort: the built-in CMU loader never needs one, but
// a supplemental source recorded in another alphabet (a Wiktionary IPA
// span, a legacy Festival lexicon) does.
type ConversionRule struct {
	Prefixes     map[string]string `json:"prefixes"`
	Suffixes     map[string]string `json:"suffixes"`
	Replacements map[string]string `json:"replacements"`
}

// LoadConversionRule reads a ConversionRule from a JSON file.
func LoadConversionRule(path string) (*ConversionRule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConversionRuleBlob(b)
}

// LoadConversionRuleBlob reads a ConversionRule from JSON bytes.
func LoadConversionRuleBlob(blob []byte) (*ConversionRule, error) {
	r := &ConversionRule{}
	if err := json.Unmarshal(blob, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Convert applies the rule's three substitution passes, in order:
// prefix replacement, suffix replacement, then unanchored in-string
// replacement. Each map is walked in Go's unspecified (effectively
// random) iteration order and each match is applied independently rather
// than chosen by longest-match, so the order in which entries are listed
// has no effect, and rules whose keys overlap can give different results
// from one call to the next.
func (r *ConversionRule) Convert(s string) string {
	for k, v := range r.Prefixes {
		if strings.HasPrefix(s, k) {
			s = v + s[len(k):]
		}
	}
	for k, v := range r.Suffixes {
		if strings.HasSuffix(s, k) {
			s = s[:len(s)-len(k)] + v
		}
	}
	for k, v := range r.Replacements {
		s = strings.ReplaceAll(s, k, v)
	}
	return s
}

// ConvertIPA transcodes an IPA-notated pronunciation into a
// space-separated ARPABET string using rule, then splits the result
// into individual symbols ready for phoneme.ParseSequence.
func ConvertIPA(rule *ConversionRule, ipa string) string {
	return strings.Join(strings.Fields(rule.Convert(ipa)), " ")
}
