package vowelgraph

import "testing"

func TestIdentityDistance(t *testing.T) {
	for _, v := range []string{"AA", "IY", "OY", "ER"} {
		if d := Distance(v, v); d != 0 {
			t.Errorf("Distance(%s,%s) = %d, want 0", v, v, d)
		}
	}
}

func TestSymmetry(t *testing.T) {
	pairs := [][2]string{{"AE", "UW"}, {"ER", "OY"}, {"AW", "IY"}}
	for _, p := range pairs {
		a := Distance(p[0], p[1])
		b := Distance(p[1], p[0])
		if a != b {
			t.Errorf("Distance(%s,%s)=%d != Distance(%s,%s)=%d", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestDirectEdge(t *testing.T) {
	if d := Distance("AE", "AA"); d != 1 {
		t.Errorf("Distance(AE,AA) = %d, want 1", d)
	}
}

func TestERAdjacency(t *testing.T) {
	if d := Distance("ER", "AH"); d != 1 {
		t.Errorf("Distance(ER,AH) = %d, want 1", d)
	}
}

func TestNonNegative(t *testing.T) {
	for _, a := range []string{"AA", "AE", "AH", "AO", "EH", "ER", "IH", "IY", "UH", "UW", "AW", "AY", "EY", "OW", "OY"} {
		for _, b := range []string{"AA", "AE", "AH", "AO", "EH", "ER", "IH", "IY", "UH", "UW", "AW", "AY", "EY", "OW", "OY"} {
			if Distance(a, b) < 0 {
				t.Errorf("Distance(%s,%s) < 0", a, b)
			}
		}
	}
}

func TestUnknownVowelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown vowel")
		}
	}()
	Distance("ZZ", "AA")
}
