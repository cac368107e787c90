package engine

import (
	"testing"

	"github.com/scansion/meter/pkg/dictionary"
)

func testDict() dictionary.Dict {
	return dictionary.Dict{
		"I":         {"AY1"},
		"WANT":      {"W AA1 N T"},
		"TO":        {"T UW1", "T AH0"},
		"SUCK":      {"S AH1 K"},
		"YOUR":      {"Y AO1 R"},
		"BLOOD":     {"B L AH1 D"},
		"RIGHT":     {"R AY1 T"},
		"NOW":       {"N AW1"},
		"KARAOKE":   {"K AE2 R IY0 OW1 K IY0"},
		"OKEY-DOKEY": {"OW1 K IY0 D OW1 K IY0"},
		"FIRE":      {"F AY1 ER0", "F AY1 R"},
		"CRIME":     {"K R AY1 M"},
		"ASSOCIATE": {
			"AH0 S OW1 S IY0 AH0 T",
			"AH0 S OW1 S IY0 EY2 T",
			"AH0 S OW1 SH IY0 AH0 T",
			"AH0 S OW1 SH IY0 EY2 T",
		},
		"READ":    {"R EH1 D"},
		"BOOK":    {"B UH1 K"},
		"PULLED":  {"P UH1 L D"},
		"PULLEY":  {"P UH1 L IY0"},
		"WHICH":   {"W IH1 CH"},
		"SUMMONED": {"S AH1 M AH0 N D"},
		"BY":      {"B AY1"},
		"BULLY":   {"B UH1 L IY0"},
		"THE":     {"DH AH0"},
		"DO":      {"D UW1"},
		"YOU":     {"Y UW1"},
		"BLEED":   {"B L IY1 D"},
		"PENELOPE": {"P EH1 N AH0 L OW0 P IY0"},
	}
}

func newTestEngine() *Engine {
	return New(testDict())
}

func TestWordToPhonesAssociate(t *testing.T) {
	e := newTestEngine()
	variants, err := e.WordToPhones("associate")
	if err != nil {
		t.Fatalf("WordToPhones error: %v", err)
	}
	if len(variants) < 4 {
		t.Fatalf("got %d variants, want at least 4", len(variants))
	}
	if variants[0] != "AH0 S OW1 S IY0 AH0 T" {
		t.Fatalf("first variant = %q, want AH0 S OW1 S IY0 AH0 T", variants[0])
	}
}

func TestWordToPhonesNotFound(t *testing.T) {
	e := newTestEngine()
	if _, err := e.WordToPhones("xyzzy"); err == nil {
		t.Fatalf("expected an error for an unrecognized word")
	}
}

func TestCheckMeterValiditySuckYourBlood(t *testing.T) {
	e := newTestEngine()
	text := "I want to suck your blood right now"

	if r := e.CheckMeterValidity(text, "x/x/x/x/"); !r.Valid {
		t.Fatalf("expected %q to scan against x/x/x/x/", text)
	}
	if r := e.CheckMeterValidity(text, "x/x/x/x"); r.Valid {
		t.Fatalf("expected %q to fail against x/x/x/x", text)
	}
	if r := e.CheckMeterValidity(text, "x/x/x/x/x"); r.Valid {
		t.Fatalf("expected %q to fail against x/x/x/x/x", text)
	}
}

func TestCheckMeterValidityKaraoke(t *testing.T) {
	e := newTestEngine()
	if r := e.CheckMeterValidity("karaoke okey-dokey", "/x/x /x/x"); !r.Valid {
		t.Fatalf("expected karaoke okey-dokey to scan against /x/x /x/x")
	}
	if r := e.CheckMeterValidity("karaoke okey-dokey", "x/x/ x/x/"); r.Valid {
		t.Fatalf("expected karaoke okey-dokey to fail against x/x/ x/x/")
	}
}

func TestCheckSyllableValidityFireCrime(t *testing.T) {
	e := newTestEngine()
	if r := e.CheckSyllableValidity("fire crime", 3); !r.Valid {
		t.Fatalf("expected fire crime to have 3 syllables")
	}
	if r := e.CheckSyllableValidity("fire crime", 2); !r.Valid {
		t.Fatalf("expected fire crime to also match 2 syllables via the monosyllabic FIRE pronunciation")
	}
	if r := e.CheckSyllableValidity("fire crime", 4); r.Valid {
		t.Fatalf("expected fire crime to fail 4 syllables")
	}
}

func TestEndRhymeDistancePulledPulley(t *testing.T) {
	e := newTestEngine()
	d, err := e.EndRhymeDistance("I pulled the pulley", "which summoned by bully")
	if err != nil {
		t.Fatalf("EndRhymeDistance error: %v", err)
	}
	if d != 0 {
		t.Fatalf("EndRhymeDistance = %d, want 0", d)
	}
}

func TestEndRhymeDistanceBleedPenelope(t *testing.T) {
	e := newTestEngine()
	d, err := e.EndRhymeDistance("do you bleed", "Penelope")
	if err != nil {
		t.Fatalf("EndRhymeDistance error: %v", err)
	}
	const consonantIndel = 5
	const vowelStressPenalty = 1
	if d != consonantIndel+vowelStressPenalty {
		t.Fatalf("EndRhymeDistance = %d, want %d", d, consonantIndel+vowelStressPenalty)
	}
}

func TestMinimumTextAlignmentUnrecognizedPropagation(t *testing.T) {
	e := newTestEngine()
	_, err := e.MinimumTextAlignment("read xyzzy", "book rrrzzz")
	if err == nil {
		t.Fatalf("expected an UnidentifiedWordsError")
	}
	uw, ok := err.(*UnidentifiedWordsError)
	if !ok {
		t.Fatalf("error type = %T, want *UnidentifiedWordsError", err)
	}
	hasXYZZY, hasRRRZZZ := false, false
	for _, w := range uw.Words {
		if w == "XYZZY" {
			hasXYZZY = true
		}
		if w == "RRRZZZ" {
			hasRRRZZZ = true
		}
	}
	if !hasXYZZY || !hasRRRZZZ {
		t.Fatalf("unrecognized words = %v, want both XYZZY and RRRZZZ", uw.Words)
	}
}

func TestLevenshteinDistanceKittenSitting(t *testing.T) {
	e := newTestEngine()
	d := e.LevenshteinDistance("K IH1 T AH0 N", "S IH1 T IH0 NG")
	if d <= 0 {
		t.Fatalf("LevenshteinDistance = %d, want > 0", d)
	}
}

func TestFuzzyMeterToBinarySet(t *testing.T) {
	e := newTestEngine()
	patterns, err := e.FuzzyMeterToBinarySet("(x/)x/(x/)")
	if err != nil {
		t.Fatalf("FuzzyMeterToBinarySet error: %v", err)
	}
	if len(patterns) != 3 {
		t.Fatalf("got %d patterns, want 3", len(patterns))
	}
}
