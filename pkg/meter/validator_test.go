package meter

import "testing"

func TestValidateMeterSimple(t *testing.T) {
	words := []WordStress{
		{Word: "I", Recognized: true, StressPatterns: []string{"0"}},
		{Word: "want", Recognized: true, StressPatterns: []string{"1"}},
		{Word: "to", Recognized: true, StressPatterns: []string{"0"}},
		{Word: "suck", Recognized: true, StressPatterns: []string{"1"}},
		{Word: "your", Recognized: true, StressPatterns: []string{"0"}},
		{Word: "blood", Recognized: true, StressPatterns: []string{"1"}},
		{Word: "right", Recognized: true, StressPatterns: []string{"0"}},
		{Word: "now", Recognized: true, StressPatterns: []string{"1"}},
	}
	if r := ValidateMeter("x/x/x/x/", words); !r.Valid {
		t.Errorf("expected valid, got %+v", r)
	}
	if r := ValidateMeter("x/x/x/x", words); r.Valid {
		t.Errorf("expected invalid (short meter), got %+v", r)
	}
	if r := ValidateMeter("x/x/x/x/x", words); r.Valid {
		t.Errorf("expected invalid (long meter), got %+v", r)
	}
}

func TestValidateMeterSecondaryStressAmbiguity(t *testing.T) {
	// "ISCHEMIC" ("210") fits both "//x" and "x/x" per its ambiguous
	// secondary stress adjacent to the primary stress.
	words := []WordStress{
		{Word: "ischemic", Recognized: true, StressPatterns: []string{"210"}},
	}
	if r := ValidateMeter("//x", words); !r.Valid {
		t.Errorf("expected valid for //x, got %+v", r)
	}
	if r := ValidateMeter("x/x", words); !r.Valid {
		t.Errorf("expected valid for x/x, got %+v", r)
	}
}

func TestValidateMeterMonosyllabicAmbiguous(t *testing.T) {
	words := []WordStress{
		{Word: "cat", Recognized: true, StressPatterns: []string{"1"}},
	}
	// A monosyllabic word consumes one slot regardless of its value.
	if r := ValidateMeter("x", words); !r.Valid {
		t.Errorf("expected valid, got %+v", r)
	}
	if r := ValidateMeter("/", words); !r.Valid {
		t.Errorf("expected valid, got %+v", r)
	}
}

func TestValidateMeterUnrecognizedWord(t *testing.T) {
	words := []WordStress{
		{Word: "cat", Recognized: true, StressPatterns: []string{"1"}},
		{Word: "zxqy", Recognized: false},
	}
	r := ValidateMeter("//", words)
	if r.Valid {
		t.Errorf("expected invalid due to unrecognized word")
	}
	if len(r.UnrecognizedWords) != 1 || r.UnrecognizedWords[0] != "zxqy" {
		t.Errorf("expected unrecognized word zxqy, got %v", r.UnrecognizedWords)
	}
}

func TestValidateMeterBadMeterString(t *testing.T) {
	words := []WordStress{{Word: "cat", Recognized: true, StressPatterns: []string{"1"}}}
	r := ValidateMeter("(x", words)
	if r.Valid {
		t.Errorf("expected invalid for unparseable meter")
	}
}

func TestValidateSyllablesFireCrime(t *testing.T) {
	words := []WordSyllables{
		{Word: "fire", Recognized: true, SyllableCounts: []int{2, 1}},
		{Word: "crime", Recognized: true, SyllableCounts: []int{1}},
	}
	if r := ValidateSyllables(3, words); !r.Valid {
		t.Errorf("expected valid for 3 syllables, got %+v", r)
	}
	if r := ValidateSyllables(2, words); !r.Valid {
		t.Errorf("expected valid for 2 syllables (1-syllable 'fire'), got %+v", r)
	}
	if r := ValidateSyllables(4, words); r.Valid {
		t.Errorf("expected invalid for 4 syllables, got %+v", r)
	}
}

func TestValidateSyllablesUnrecognizedWord(t *testing.T) {
	words := []WordSyllables{
		{Word: "zzqy", Recognized: false},
	}
	r := ValidateSyllables(1, words)
	if r.Valid {
		t.Errorf("expected invalid due to unrecognized word")
	}
	if len(r.UnrecognizedWords) != 1 {
		t.Errorf("expected one unrecognized word, got %v", r.UnrecognizedWords)
	}
}
