// Package meter parses stress-pattern meter strings and validates text
// against meter or syllable-count targets.
package meter

import "fmt"

// ErrorKind enumerates the structural ways a meter string can be invalid.
type ErrorKind int

const (
	NestedOptional ErrorKind = iota
	UnclosedOptional
	UnrecognizedCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case NestedOptional:
		return "nested optional group"
	case UnclosedOptional:
		return "unclosed optional group"
	case UnrecognizedCharacter:
		return "unrecognized character"
	default:
		return "unknown meter error"
	}
}

// ParseError reports a structural problem in a meter string.
type ParseError struct {
	Kind ErrorKind
	Char rune // set only for UnrecognizedCharacter
}

func (e *ParseError) Error() string {
	if e.Kind == UnrecognizedCharacter {
		return fmt.Sprintf("meter: %s %q", e.Kind, e.Char)
	}
	return fmt.Sprintf("meter: %s", e.Kind)
}

// Pattern is a concrete stress sequence: 0 for unstressed, 1 for stressed.
type Pattern []int

func (p Pattern) key() string {
	b := make([]byte, len(p))
	for i, v := range p {
		if v != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// path is a single candidate being built up while scanning the meter
// string, plus whether it is currently "active" inside an optional group
// (i.e. this is the branch of the fork that includes the group).
type path struct {
	seq    Pattern
	active bool
}

// Parse denotes a meter string as the set of concrete binary stress
// patterns it can represent: optional groups `(...)` fork every path in
// flight into an included and an omitted branch; duplicate resulting
// patterns collapse.
func Parse(meterStr string) ([]Pattern, error) {
	paths := []path{{seq: Pattern{}, active: false}}
	inOptional := false

	for _, c := range meterStr {
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue

		case c == 'x' || c == '/':
			slot := 0
			if c == '/' {
				slot = 1
			}
			for i := range paths {
				if !inOptional || paths[i].active {
					paths[i].seq = append(append(Pattern{}, paths[i].seq...), slot)
				}
			}

		case c == '(':
			if inOptional {
				return nil, &ParseError{Kind: NestedOptional}
			}
			inOptional = true
			forked := make([]path, len(paths))
			for i, p := range paths {
				forked[i] = path{seq: append(Pattern{}, p.seq...), active: true}
			}
			paths = append(paths, forked...)

		case c == ')':
			if !inOptional {
				return nil, &ParseError{Kind: UnclosedOptional}
			}
			inOptional = false
			for i := range paths {
				paths[i].active = false
			}

		default:
			return nil, &ParseError{Kind: UnrecognizedCharacter, Char: c}
		}
	}

	if inOptional {
		return nil, &ParseError{Kind: UnclosedOptional}
	}

	seen := make(map[string]bool, len(paths))
	result := make([]Pattern, 0, len(paths))
	for _, p := range paths {
		k := p.seq.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, p.seq)
	}
	return result, nil
}
