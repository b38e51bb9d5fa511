// Package stringnorm provides small composable string normalizers.
package stringnorm

import (
	"errors"
)

// ErrNormalizeComplete is a sentinel value returned by a normalizer to
// request that no other normalizers be run.
var ErrNormalizeComplete = errors.New("ErrNormalizeComplete")

// A Normalizer normalizes a string value.
type Normalizer interface {
	// Normalize returns the normalized form of text.
	// If the normalizer has nothing to change, it must return text as is.
	// If the normalizer wishes to declare its result final, it must return
	// the new text and ErrNormalizeComplete.
	// If the normalizer wishes to reject the text as invalid, it may return
	// any other error.
	Normalize(text string) (string, error)
}

// Func adapts an infallible string function to a Normalizer.
type Func func(string) string

// Normalize returns f(text).
func (f Func) Normalize(text string) (string, error) {
	return f(text), nil
}

// A List of Normalizers, which applies each Normalizer in order.
type List []Normalizer

// Normalize applies each normalizer in n to text, returning the final value.
// If any normalizer returns ErrNormalizeComplete, the remaining normalizers
// are short-circuited.
func (n List) Normalize(text string) (string, error) {
	var err error
	for _, norm := range n {
		text, err = norm.Normalize(text)
		if err != nil {
			if err == ErrNormalizeComplete {
				return text, nil
			}
			return text, err
		}
	}
	return text, nil
}

// Combine combines a list of normalizers into a single Normalizer
// instance that applies each normalizer in order as a List does. Nested
// Lists are flattened and nil normalizers are skipped.
func Combine(normalizers ...Normalizer) Normalizer {
	combined := Flatten(normalizers...)
	if len(combined) == 1 {
		return combined[0]
	}
	return combined
}

// NormalizeNoErr applies normalizer to text; errors are silently ignored,
// and the original text is returned on error.
func NormalizeNoErr(normalizer Normalizer, text string) string {
	res, err := apply(normalizer, text)
	if err != nil {
		return text
	}
	return res
}
