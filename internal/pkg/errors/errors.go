package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks a structurally invalid top-level input, the only
	// failure the assessment pipeline ever surfaces.
	ErrInvalidInput = errors.New("invalid input")
)
