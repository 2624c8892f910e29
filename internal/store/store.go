package store

import "errors"

var (
	// ErrDuplicateEmail is returned when the users unique index rejects a
	// write. The registration flow treats it the same as finding the user
	// up front; the index is what actually breaks the race.
	ErrDuplicateEmail = errors.New("email already registered")

	ErrNotFound = errors.New("record not found")
)
