package phoneme

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Manner is the manner of articulation axis used by consonant distance.
type Manner string

const (
	Affricate           Manner = "affricate"
	Approximant         Manner = "approximant"
	Fricative           Manner = "fricative"
	LateralApproximant  Manner = "lateral-approximant"
	Nasal               Manner = "nasal"
	Plosive             Manner = "plosive"
)

// Consonant is the fixed feature record for one ARPABET consonant.
type Consonant struct {
	Symbol   string `json:"symbol"`
	Manner   Manner `json:"manner"`
	Sibilant bool   `json:"sibilant"`
	Voiced   bool   `json:"voiced"`
	Place    int    `json:"place"`
}

//go:embed consonants.json
var consonantsJSON []byte

type consonantTable struct {
	Consonants []Consonant `json:"consonants"`
}

var consonants map[string]Consonant

func init() {
	var table consonantTable
	if err := json.Unmarshal(consonantsJSON, &table); err != nil {
		panic(fmt.Sprintf("phoneme: decode consonant table: %s", err))
	}
	consonants = make(map[string]Consonant, len(table.Consonants))
	for _, c := range table.Consonants {
		consonants[c.Symbol] = c
	}
}

// GetConsonant returns the feature record for an ARPABET consonant symbol.
// Querying an unknown or non-consonant symbol is a programmer error.
func GetConsonant(symbol string) Consonant {
	c, ok := consonants[symbol]
	if !ok {
		panic("phoneme: unknown consonant " + symbol)
	}
	return c
}

// IsKnownConsonant reports whether symbol is one of the 24 consonants in
// the fixed feature table.
func IsKnownConsonant(symbol string) bool {
	_, ok := consonants[symbol]
	return ok
}
