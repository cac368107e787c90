package tokenize

import "context"

// Result is a tokenization pass over text: the original text plus the
// token runs extracted from it so far. Pos/Len are fields for rune
// offsets into Text, letting a Processor re-derive a token's original
// surface form (capitalization, surrounding punctuation) even after
// normalization has rewritten Tokens. Pipeline does not fill them: they
// stay nil unless a Processor sets them.
type Result struct {
	Text   string
	Tokens []string
	Pos    []int
	Len    []int
}

// Processor is the minimal building block of an optional normalization
// pipeline attached ahead of dictionary lookup — for example expanding
// contractions or folding archaic spellings before a word reaches the
// dictionary collaborator. A Processor takes an existing Result and
// returns a new one; implementations may add, merge, or rewrite tokens
// but must preserve Result.Text.
type Processor interface {
	Apply(input Result) Result
}

// CancellableProcessor is the streaming counterpart of Processor, for a
// normalization stage that may itself block (a remote lookup, a large
// rule table fetched lazily). Implementations must close the returned
// channel in all cases, including when ctx is canceled.
type CancellableProcessor interface {
	StreamApply(ctx context.Context, input Result) <-chan Result
}

// Pipeline runs text through Tokenize and then through each stage in
// order, threading the Result from one stage into the next.
func Pipeline(text string, stages ...Processor) Result {
	tokens := Tokenize(text)
	result := Result{
		Text:   text,
		Tokens: tokens,
	}
	for _, stage := range stages {
		result = stage.Apply(result)
	}
	return result
}
