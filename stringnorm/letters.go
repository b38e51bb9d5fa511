package stringnorm

import (
	"strings"
	"unicode"
)

// SkipToLetters drops everything before the first Unicode letter in text.
// Text that already starts with a letter is returned as is; text with no
// letters at all becomes "".
var SkipToLetters Normalizer = Func(skipToLetters)

func skipToLetters(text string) string {
	start := strings.IndexFunc(text, unicode.IsLetter)
	if start == 0 {
		return text
	}
	if start < 0 {
		return ""
	}
	return text[start:]
}
