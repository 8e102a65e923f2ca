package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText folds user text for storage and answer matching.
// The result is NFC, lowercase, and has no leading or trailing space.
// Every run of Unicode whitespace becomes a single space, so tabs,
// newlines and no-break spaces typed in chat clients all count as one space.
// Invisible format characters such as zero-width spaces are dropped.
// Letters are otherwise kept as typed: diacritics, "ё", hyphens and apostrophes survive.
func NormalizeText(text string) string {
	text = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, norm.NFC.String(text))

	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
