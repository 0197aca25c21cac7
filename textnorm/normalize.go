package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowers the text, decomposes accented characters and removes
// their diacritical marks, so "Álvarez" and "alvarez" compare equal.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	stripped, _, err := transform.String(stripper, text)
	if err != nil {
		// The NFD/NFC chain never fails on valid UTF-8; fall back to the raw text.
		stripped = text
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}
