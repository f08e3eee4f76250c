package repository

import "errors"

var (
	// ErrNotFound means no document matched the key/id combination.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a create hit an existing record where the
	// domain forbids overwrite.
	ErrDuplicate = errors.New("duplicate record")
)
