package interview

import "errors"

var (
	// ErrMissingInput is returned when a source document or query is
	// empty.
	ErrMissingInput = errors.New("interview: missing input text")
	// ErrSessionNotFound is returned for unknown session ids, before
	// any generation is attempted.
	ErrSessionNotFound = errors.New("interview: session not found")
)
