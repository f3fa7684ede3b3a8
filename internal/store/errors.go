package store

import "errors"

var (
	// ErrItemNotFound is returned by Update when the addressed key does not
	// exist. Handlers map it to 404, never 500.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoFieldsToUpdate is returned when an update carries zero field
	// changes. Surfaced to the caller as a client error, not a silent no-op.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
