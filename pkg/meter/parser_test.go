package meter

import "testing"

func patternSet(t *testing.T, ps []Pattern) map[string]bool {
	t.Helper()
	set := make(map[string]bool, len(ps))
	for _, p := range ps {
		set[p.key()] = true
	}
	return set
}

func TestParseSimple(t *testing.T) {
	got, err := Parse("x/x/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(got))
	}
	want := Pattern{0, 1, 0, 1}
	if got[0].key() != want.key() {
		t.Errorf("got %v, want %v", got[0], want)
	}
}

func TestParseOptionalGroup(t *testing.T) {
	got, err := Parse("(x/)x/(x/)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := patternSet(t, got)
	want := []Pattern{{0, 1}, {0, 1, 0, 1}, {0, 1, 0, 1, 0, 1}}
	if len(set) != 3 {
		t.Fatalf("expected 3 distinct patterns, got %d: %v", len(set), got)
	}
	for _, w := range want {
		if !set[w.key()] {
			t.Errorf("missing expected pattern %v in %v", w, got)
		}
	}
}

func TestParseWhitespaceIgnored(t *testing.T) {
	got, err := Parse("/x /x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pattern{1, 0, 1, 0}
	if got[0].key() != want.key() {
		t.Errorf("got %v, want %v", got[0], want)
	}
}

func TestParseNestedOptionalError(t *testing.T) {
	_, err := Parse("(x(/))")
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != NestedOptional {
		t.Fatalf("expected NestedOptional error, got %v", err)
	}
}

func TestParseUnclosedOptionalError(t *testing.T) {
	_, err := Parse("(x/")
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != UnclosedOptional {
		t.Fatalf("expected UnclosedOptional error, got %v", err)
	}
}

func TestParseUnopenedCloseError(t *testing.T) {
	_, err := Parse("x/)")
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != UnclosedOptional {
		t.Fatalf("expected UnclosedOptional error, got %v", err)
	}
}

func TestParseUnrecognizedCharacterError(t *testing.T) {
	_, err := Parse("x/q")
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != UnrecognizedCharacter || perr.Char != 'q' {
		t.Fatalf("expected UnrecognizedCharacter error, got %v", err)
	}
}

func TestParseOnlyZerosAndOnes(t *testing.T) {
	got, err := Parse("(x/)x/(x/)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range got {
		for _, v := range p {
			if v != 0 && v != 1 {
				t.Errorf("pattern %v contains value other than 0/1", p)
			}
		}
	}
}
