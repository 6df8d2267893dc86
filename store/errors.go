package store

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
	// ErrStatusConflict means the persisted status is no longer the one a
	// change was validated against.
	ErrStatusConflict = errors.New("status changed concurrently")
)
