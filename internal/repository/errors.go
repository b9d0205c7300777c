package repository

import "errors"

var (
	// ErrNotFound is wrapped by lookups that match no row.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousID is returned when an ID prefix matches several sessions.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)
