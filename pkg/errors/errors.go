// Package errors holds the error kinds shared across layers. Module
// sentinels wrap one of these so handlers can map a whole kind to an
// HTTP status with errors.Is.
package errors

import "errors"

var (
	// ErrNotFound a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput the caller sent something unusable: missing upload, empty data set, bad field type.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized the caller is not on the allow-list or has no valid session.
	ErrUnauthorized = errors.New("unauthorized")
)

// kindError is a sentinel with its own message that unwraps to a kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New creates a sentinel error with message msg belonging to kind.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
