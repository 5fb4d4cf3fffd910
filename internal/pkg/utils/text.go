package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// StripDiacritics removes Vietnamese tone and vowel marks, so "Trà Đá" becomes "Tra Da".
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return dStroke.Replace(out)
}

// FoldText lowercases s without diacritics for search matching.
func FoldText(s string) string {
	return strings.ToLower(StripDiacritics(strings.TrimSpace(s)))
}
