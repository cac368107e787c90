package tokenize

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	got := Tokenize("I want to suck your blood right now")
	want := []string{"I", "want", "to", "suck", "your", "blood", "right", "now"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePreservesApostropheAndHyphen(t *testing.T) {
	got := Tokenize("can't drip-dry")
	want := []string{"can't", "drip-dry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStripsSurroundingPunctuation(t *testing.T) {
	got := Tokenize("\"fire,\" crime!")
	want := []string{"fire", "crime"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeSplitsOnEmDash(t *testing.T) {
	got := Tokenize("fire—crime")
	want := []string{"fire", "crime"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got := Tokenize("   ")
	if len(got) != 0 {
		t.Fatalf("Tokenize(whitespace) = %v, want empty", got)
	}
}

type exclaimProcessor struct{}

func (exclaimProcessor) Apply(r Result) Result {
	for i, tok := range r.Tokens {
		r.Tokens[i] = tok + "!"
	}
	return r
}

func TestPipelineAppliesStages(t *testing.T) {
	r := Pipeline("fire crime", exclaimProcessor{})
	want := []string{"fire!", "crime!"}
	if !reflect.DeepEqual(r.Tokens, want) {
		t.Fatalf("Pipeline tokens = %v, want %v", r.Tokens, want)
	}
}
