package stringnorm

import "strings"

// A Suffix normalizer appends Suffix to text that does not already end in
// it. The comparison is exact and case-sensitive.
type Suffix struct {
	Suffix string
}

// Normalize returns text with s.Suffix present at the end.
func (s Suffix) Normalize(text string) (string, error) {
	if strings.HasSuffix(text, s.Suffix) {
		return text, nil
	}
	return text + s.Suffix, nil
}
