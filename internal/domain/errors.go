package domain

import "errors"

var (
	// ErrNotFound is returned when no seminar has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an id is not an integer.
	ErrInvalidID = errors.New("invalid id")
	// ErrStoreWrite wraps failures to persist the collection.
	ErrStoreWrite = errors.New("store write failed")
)
