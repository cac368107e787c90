package dictionary

import (
	"encoding/gob"
	"fmt"
	"io"
)

// GobLoader handles a gob-encoded Dictionary, used as a fast-loading
// binary cache of an already-parsed CMU-format dictionary so repeated
// process startups skip re-parsing the full text file.
type GobLoader struct{}

func (g *GobLoader) Kind() Kind { return KindGOB }

// Sniff is conservative: a gob payload is framed binary, so its prefix
// will not look like well-formed CMU text (fields separated uniformly by
// whitespace, second-and-later fields all ARPABET-shaped). Rather than
// guessing from bytes, Sniff always returns false, so the generic sniff
// path never selects GobLoader; callers that know they have a gob cache
// read it directly with ReadGob (or GobLoader.LoadAll).
func (g *GobLoader) Sniff(sniff []byte, isEOF bool) bool {
	return false
}

func (g *GobLoader) LoadAll(r io.Reader) (Dict, error) {
	dec := gob.NewDecoder(r)
	dict := make(Dict)
	if err := dec.Decode(&dict); err != nil {
		return nil, fmt.Errorf("decode gob dictionary: %w", err)
	}
	return dict, nil
}

func (g *GobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	dict, err := g.LoadAll(r)
	if err != nil {
		return err
	}
	for w, prons := range dict {
		if len(prons) == 0 {
			continue
		}
		if err := emit(w, prons); err != nil {
			return err
		}
	}
	return nil
}

// WriteGob serializes dict as a gob-encoded binary cache.
func WriteGob(w io.Writer, dict Dict) error {
	return gob.NewEncoder(w).Encode(dict)
}

// ReadGob loads a gob-encoded binary cache written by WriteGob.
func ReadGob(r io.Reader) (Dict, error) {
	return (&GobLoader{}).LoadAll(r)
}
