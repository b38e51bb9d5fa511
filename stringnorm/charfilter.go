package stringnorm

import (
	"strings"
	"unicode"
)

// SpecialCharacters is the punctuation that config file keys may not contain.
const SpecialCharacters = ".,?!@#$%^&*()_+-=';:'\""

// A CharFilter drops every rune of text for which Keep returns false.
type CharFilter struct {
	Keep func(r rune) bool
}

// Normalize returns text without the runes c rejects. If every rune is
// kept, text itself is returned.
func (c CharFilter) Normalize(text string) (string, error) {
	drop := strings.IndexFunc(text, func(r rune) bool { return !c.Keep(r) })
	if drop < 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:drop])
	for _, r := range text[drop:] {
		if c.Keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// StripSpecial keeps spaces, letters and digits, and drops everything else
// including SpecialCharacters.
var StripSpecial Normalizer = CharFilter{Keep: keepPlain}

func keepPlain(r rune) bool {
	if r == ' ' {
		return true
	}
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) &&
		!strings.ContainsRune(SpecialCharacters, r)
}
