package dictionary

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseWiktionaryHTML scans a rendered Wiktionary entry page (not the
// XML dump format) for pronunciation spans and emits them as
// (headword, pronunciations) entries through emit.
//
// Wiktionary renders IPA transcriptions as `<span class="IPA">...</span>`
// immediately following the entry's headword, which Wiktionary itself
// marks up as `<strong class="Latn headword">...</strong>`. This walks
// the HTML token stream looking for that pairing rather than trying to track
// nesting with regular expressions, which is the approach the XML-dump
// variant of this idea took and which does not hold up against
// Wiktionary's actual (deeply nested, templated) page HTML.
//
// ARPABET dictionaries have no natural analogue to French liaison or
// IPA dot-syllable markers, so unlike the dropped XML-dump parser this
// loader does not attempt any phonetic alphabet translation: the
// extracted IPA string is kept as-is and it is the caller's
// responsibility to feed it through a rule-based converter (see
// ConvertIPA) before merging it into an ARPABET dictionary.
func ParseWiktionaryHTML(r io.Reader, emit OnEntryFunc) error {
	z := html.NewTokenizer(r)

	var headword string
	var inHeadword bool
	var inIPA bool

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err == io.EOF {
				return nil
			} else {
				return fmt.Errorf("parse wiktionary html: %w", err)
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			classes := ""
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "class" {
					classes = string(val)
				}
			}
			switch string(name) {
			case "strong":
				if strings.Contains(classes, "headword") {
					inHeadword = true
				}
			case "span":
				if strings.Contains(classes, "IPA") {
					inIPA = true
				}
			}

		case html.TextToken:
			text := strings.TrimSpace(string(z.Text()))
			if text == "" {
				continue
			}
			if inHeadword {
				headword = text
				inHeadword = false
			} else if inIPA {
				if headword != "" {
					if err := emit(headword, []string{text}); err != nil {
						return err
					}
				}
				inIPA = false
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong":
				inHeadword = false
			case "span":
				inIPA = false
			}
		}
	}
}

// WiktionaryLoader adapts ParseWiktionaryHTML to the Loader interface
// so it can be registered alongside the CMU and gob loaders via
// RegisterLoader. It is not auto-detected by Sniff: Wiktionary HTML
// pages do not have a reliable byte-prefix signature distinct from
// arbitrary HTML, so callers route to it explicitly.
type WiktionaryLoader struct{}

func (w *WiktionaryLoader) Kind() Kind { return "wiktionary_html" }

func (w *WiktionaryLoader) Sniff(sniff []byte, isEOF bool) bool { return false }

func (w *WiktionaryLoader) Load(r io.Reader, emit OnEntryFunc) error {
	return ParseWiktionaryHTML(r, emit)
}

func (w *WiktionaryLoader) LoadAll(r io.Reader) (Dict, error) {
	dict := make(Dict)
	err := w.Load(r, func(word string, prons []string) error {
		dict[word] = append(dict[word], prons...)
		return nil
	})
	return dict, err
}
