package dictionary

// MergeMode controls how multiple sources (a preloaded base dictionary,
// a supplemental CMU-format dump, a Wiktionary scrape, ...) are combined
// when the same word appears in more than one source.
type MergeMode int

const (
	// MergeModeAppend appends new pronunciations after existing ones.
	MergeModeAppend MergeMode = iota

	// MergeModePrepend prepends new pronunciations before existing ones,
	// useful for giving a later, more authoritative source priority as
	// the first-listed (and so default) pronunciation.
	MergeModePrepend

	// MergeModeNoOverride leaves entries for words that already exist in
	// the preloaded dictionary untouched; new pronunciations are only
	// added for words not present yet.
	MergeModeNoOverride

	// MergeModeReplace discards a word's existing pronunciations the
	// first time it is seen again in a new source, keeping only the new
	// ones.
	MergeModeReplace
)

// Kind identifies which Loader produced (or should consume) a source.
type Kind string

const (
	// KindGOB identifies a gob-encoded Dictionary, used as a fast-loading
	// binary cache of an already-parsed CMU-format dictionary.
	KindGOB Kind = "gob"

	// KindCMU identifies the CMU Pronouncing Dictionary text format:
	//   WORD  PH ON1 EME0 S
	//   WORD(2)  ALT ER0 N AH0 T
	KindCMU Kind = "cmu_txt"
)

// sniffLen bounds the prefix read to decide which Loader applies.
const sniffLen = 4 * 1024
