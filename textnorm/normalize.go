package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ScriptConverter folds script variants into the canonical script used by the
// corpus (e.g. traditional Chinese characters to simplified). Implementations
// must be total: every input maps to some output, never an error.
type ScriptConverter interface {
	ToCanonical(text string) string
}

// NoopConverter is a ScriptConverter that returns its input unchanged.
// It is the default when no converter is supplied.
type NoopConverter struct{}

// ToCanonical returns text as-is.
func (NoopConverter) ToCanonical(text string) string { return text }

// strippedSymbols are separator and decoration characters that carry no
// discriminating meaning for alias matching. Both ASCII and full-width forms
// are listed; NFKC already folds most full-width forms, but the set stays
// explicit so the contract does not depend on that.
var strippedSymbols = map[rune]bool{
	'-': true, '_': true, '=': true, '+': true, '~': true,
	'・': true, '(': true, ')': true, '（': true, '）': true,
}

// Normalizer canonicalizes raw text for comparison. The zero value is not
// usable; construct with New.
type Normalizer struct {
	converter ScriptConverter
}

// New creates a Normalizer. A nil converter falls back to NoopConverter.
func New(converter ScriptConverter) *Normalizer {
	if converter == nil {
		converter = NoopConverter{}
	}
	return &Normalizer{converter: converter}
}

// Normalize canonicalizes text for comparison:
//
//  1. Unicode NFKC normalization, folding compatibility variants such as
//     full-width digits and presentation forms
//  2. script folding via the configured ScriptConverter
//  3. stripping of separator/decoration symbols
//  4. lowercasing and whitespace trimming
//
// The function is pure and total; every input, including the empty string,
// produces a defined output.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = n.converter.ToCanonical(text)
	text = strings.Map(func(r rune) rune {
		if strippedSymbols[r] {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(strings.ToLower(text))
}
