package journal

import "errors"

var (
	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("journal: nil parameter")

	// ErrNotFound indicates no record exists for the requested split.
	ErrNotFound = errors.New("journal: no record")
)
