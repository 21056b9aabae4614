package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching record exists.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned for identifiers that are not 24 hex characters.
	ErrInvalidID = errors.New("invalid id format")
	// ErrConflict is returned by stores on unique constraint violations.
	ErrConflict = errors.New("already exists")
)
