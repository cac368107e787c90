package engine

import (
	"fmt"
	"strings"
)

// NotFoundError reports that the dictionary collaborator has no entry
// for a given word.
type NotFoundError struct {
	Word string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word not found: %s", e.Word)
}

// UnidentifiedWordsError aggregates every word the dictionary failed to
// recognize across a multi-word comparison. It is never partial: a
// caller either gets a complete result or the full list of missing
// words from both sides of the comparison.
type UnidentifiedWordsError struct {
	Words []string
}

func (e *UnidentifiedWordsError) Error() string {
	return fmt.Sprintf("unidentified words: %s", strings.Join(e.Words, ", "))
}
