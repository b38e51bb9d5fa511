// Package ectx annotates errors with the operation that produced them.
package ectx

// A ContextErr is an error with some context information
type ContextErr struct {
	Context string
	Err     error
}

func (c ContextErr) Error() string {
	return c.Context + ": " + c.Err.Error()
}

// Unwrap returns the annotated error.
func (c ContextErr) Unwrap() error { return c.Err }

// Cause returns the annotated error, for github.com/pkg/errors.Cause.
func (c ContextErr) Cause() error { return c.Err }

// Err creates an error that wraps err with some context information.
// A nil err gives nil.
func Err(context string, err error) error {
	if err == nil {
		return nil
	}
	return ContextErr{Context: context, Err: err}
}
