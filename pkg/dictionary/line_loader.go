package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineParser parses a single logical line (whitespace already trimmed)
// into a word and its pronunciation variants. Returning word == "" or an
// empty prons means the line should be ignored (blank line, comment,
// header).
type LineParser func(line string) (word string, prons []string, err error)

// NewLineLoader builds a Loader for line-oriented text formats, such as
// the CMU Pronouncing Dictionary's tab/space-separated layout.
func NewLineLoader(kind Kind, sniff func(sniff []byte, isEOF bool) bool, parser LineParser) Loader {
	return &lineLoader{kind: kind, sniffFunc: sniff, parseLine: parser}
}

type lineLoader struct {
	kind      Kind
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine LineParser
}

func (l *lineLoader) Kind() Kind { return l.kind }

func (l *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if l.sniffFunc == nil {
		return false
	}
	return l.sniffFunc(sniff, isEOF)
}

func (l *lineLoader) LoadAll(r io.Reader) (Dict, error) {
	dict := make(Dict)
	err := l.Load(r, func(word string, prons []string) error {
		dict[word] = append(dict[word], prons...)
		return nil
	})
	return dict, err
}

func (l *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#") {
			continue
		}
		word, prons, err := l.parseLine(line)
		if err != nil {
			return fmt.Errorf("(%s): parse line %q: %w", l.kind, line, err)
		}
		if word == "" || len(prons) == 0 {
			continue
		}
		if err := emit(word, prons); err != nil {
			return err
		}
	}
	return scanner.Err()
}
