package consonantdist

import "testing"

func TestIdentity(t *testing.T) {
	for _, c := range []string{"B", "S", "CH", "NG", "R"} {
		if d := Distance(c, c); d != 0 {
			t.Errorf("Distance(%s,%s) = %d, want 0", c, c, d)
		}
	}
}

func TestSymmetry(t *testing.T) {
	pairs := [][2]string{{"B", "P"}, {"CH", "SH"}, {"W", "V"}, {"R", "L"}, {"M", "S"}}
	for _, p := range pairs {
		a := Distance(p[0], p[1])
		b := Distance(p[1], p[0])
		if a != b {
			t.Errorf("Distance(%s,%s)=%d != Distance(%s,%s)=%d", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestWV(t *testing.T) {
	if d := Distance("W", "V"); d != 2 {
		t.Errorf("Distance(W,V) = %d, want 2", d)
	}
}

func TestRL(t *testing.T) {
	if d := Distance("R", "L"); d != 1 {
		t.Errorf("Distance(R,L) = %d, want 1", d)
	}
}

func TestSameManner(t *testing.T) {
	// B and P: both plosive, place 1 and 1, voicing differs.
	if d := Distance("B", "P"); d != 1 {
		t.Errorf("Distance(B,P) = %d, want 1", d)
	}
}

func TestAffricateFricativeSibilant(t *testing.T) {
	// CH (affricate, place 5) vs SH (fricative sibilant, place 5): |0| + 0 voiced + 1 = 1.
	if d := Distance("CH", "SH"); d != 1 {
		t.Errorf("Distance(CH,SH) = %d, want 1", d)
	}
}

func TestAffricatePlosive(t *testing.T) {
	// CH (affricate, place 5, unvoiced) vs T (plosive, place 4, unvoiced): 1 + 0 + 2 = 3.
	if d := Distance("CH", "T"); d != 3 {
		t.Errorf("Distance(CH,T) = %d, want 3", d)
	}
}

func TestAffricateNonSibilantFricative(t *testing.T) {
	// CH (affricate, place 5, unvoiced) vs TH (fricative non-sibilant, place 3, unvoiced): 2 + 0 + 2 = 4.
	if d := Distance("CH", "TH"); d != 4 {
		t.Errorf("Distance(CH,TH) = %d, want 4", d)
	}
}

func TestUnrelatedManners(t *testing.T) {
	// M (nasal) vs F (fricative): unrelated.
	if d := Distance("M", "F"); d != unrelatedPenalty {
		t.Errorf("Distance(M,F) = %d, want %d", d, unrelatedPenalty)
	}
}

func TestNonNegative(t *testing.T) {
	symbols := []string{"CH", "JH", "R", "W", "Y", "DH", "F", "HH", "S", "SH", "TH", "V", "Z", "ZH", "L", "M", "N", "NG", "B", "D", "G", "K", "P", "T"}
	for _, a := range symbols {
		for _, b := range symbols {
			if Distance(a, b) < 0 {
				t.Errorf("Distance(%s,%s) < 0", a, b)
			}
		}
	}
}
