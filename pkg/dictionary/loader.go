package dictionary

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

func init() {
	builtinLoaders = []Loader{
		NewLineLoader(KindCMU, sniffCMU, parseCMULine),
		&GobLoader{},
	}
	defaultLoader = builtinLoaders[0]
}

// OnEntryFunc is called by a Loader for each dictionary entry (word,
// pronunciation variants) it parses.
type OnEntryFunc func(word string, pronunciations []string) error

// Loader parses a dictionary source (file or bytes) and emits (word,
// pronunciations) entries through the provided callback.
type Loader interface {
	// Kind returns a short identifier for the loader.
	Kind() Kind

	// Sniff inspects a prefix of the input and decides whether this
	// loader is appropriate for the source.
	//
	// - sniff: initial bytes of the source (up to a few KB).
	// - isEOF: true if sniff contains the full source.
	Sniff(sniff []byte, isEOF bool) bool

	// Load parses the entire source from r and calls emit for each entry.
	Load(r io.Reader, emit OnEntryFunc) error

	// LoadAll loads the entire dictionary into memory in one shot. More
	// efficient for loaders, like gob, that natively decode a whole map.
	LoadAll(r io.Reader) (Dict, error)
}

var (
	builtinLoaders []Loader
	defaultLoader  Loader
)

// RegisterLoader allows external code to add additional Loaders (for
// example a Festival Lexicon loader). Loaders are consulted in
// registration order during sniffing, ahead of the defaultLoader fallback.
func RegisterLoader(l Loader) {
	if l == nil {
		return
	}
	builtinLoaders = append(builtinLoaders, l)
}

// selectLoader chooses the first loader whose Sniff method returns true,
// falling back to defaultLoader (CMU text) if none match.
func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, l := range builtinLoaders {
		if l.Sniff(sniff, isEOF) {
			return l
		}
	}
	return defaultLoader
}

// LoadPaths preloads and merges dictionaries from a sequence of file
// paths, respecting MergeMode semantics between sources in path order.
func LoadPaths(fsys fs.FS, mode MergeMode, paths ...string) (Dict, error) {
	rep := NewRepresentation()
	if err := LoadInto(fsys, rep, mode, paths...); err != nil {
		return nil, err
	}
	return rep.Entries, nil
}

// LoadBlobs preloads and merges dictionaries from in-memory byte slices,
// applying MergeMode between blobs the same way LoadPaths does between
// files.
func LoadBlobs(mode MergeMode, blobs ...[]byte) (Dict, error) {
	rep := NewRepresentation()
	for _, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		sniff := blob
		isEOF := true
		if len(sniff) > sniffLen {
			sniff = sniff[:sniffLen]
			isEOF = false
		}
		l := selectLoader(sniff, isEOF)
		if err := runLoader(l, mode, bytes.NewReader(blob), rep); err != nil {
			return nil, err
		}
	}
	return rep.Entries, nil
}

// LoadInto preloads and merges dictionaries from a sequence of file
// paths into an existing Representation.
func LoadInto(fsys fs.FS, rep *Representation, mode MergeMode, paths ...string) error {
	if rep == nil {
		rep = NewRepresentation()
	}
	for _, p := range paths {
		path := strings.TrimSpace(p)
		if path == "" {
			continue
		}
		if err := loadFromFile(fsys, rep, path, mode); err != nil {
			return err
		}
	}
	return nil
}

// loadFromFile opens a file, sniffs its format, and runs the matching loader.
func loadFromFile(fsys fs.FS, rep *Representation, path string, mode MergeMode) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(f, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return fmt.Errorf("sniff %s: %w", path, readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	l := selectLoader(buf, isEOF)
	if l == nil {
		return fmt.Errorf("no loader matched for %s", path)
	}

	reader := io.MultiReader(bytes.NewReader(buf), f)
	return runLoader(l, mode, reader, rep)
}

// runLoader executes a loader, applying MergeMode semantics and global
// (word, pronunciation) de-duplication across all sources loaded into rep.
func runLoader(l Loader, mode MergeMode, r io.Reader, rep *Representation) error {
	if l == nil {
		return fmt.Errorf("nil loader")
	}
	datasetWords := make(map[string]struct{})
	replaced := make(map[string]struct{}) // used only in MergeModeReplace

	emit := func(word string, prons []string) error {
		word = Canonical(word)
		if word == "" || len(prons) == 0 {
			return nil
		}

		datasetWords[word] = struct{}{}
		baseKey := word + "\x00"

		if mode == MergeModeNoOverride {
			if _, pre := rep.PreloadedWords[word]; pre {
				return nil
			}
		}

		if mode == MergeModeReplace {
			if _, pre := rep.PreloadedWords[word]; pre {
				if _, already := replaced[word]; !already {
					for _, old := range rep.Entries[word] {
						delete(rep.SeenWordPron, baseKey+old)
					}
					rep.Entries[word] = nil
					replaced[word] = struct{}{}
				}
			}
		}

		for _, p := range prons {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			key := baseKey + p
			if _, ok := rep.SeenWordPron[key]; ok {
				continue
			}
			rep.SeenWordPron[key] = struct{}{}

			switch mode {
			case MergeModePrepend:
				rep.Entries[word] = append([]string{p}, rep.Entries[word]...)
			default:
				rep.Entries[word] = append(rep.Entries[word], p)
			}
		}
		return nil
	}

	if err := l.Load(r, emit); err != nil {
		return fmt.Errorf("load (%s): %w", l.Kind(), err)
	}

	for w := range datasetWords {
		rep.PreloadedWords[w] = struct{}{}
	}
	return nil
}
