package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks so "Télémécanique" and
// "Telemecanique" normalize to the same form.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the canonical comparison form of a text field:
// diacritics stripped, upper-cased, whitespace collapsed. The same
// normalization is applied at index build time and at query time so that
// comparisons are always consistent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		out = s
	}

	out = strings.ToUpper(out)
	return strings.Join(strings.Fields(out), " ")
}

// Tokenize splits text into normalized word tokens, treating punctuation as
// separators. Used to build the coarse inverted text index.
func Tokenize(s string) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return nil
	}

	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
