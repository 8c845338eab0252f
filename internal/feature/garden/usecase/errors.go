// Package usecase implements the garden CRUD rules on top of the repository ports.
package usecase

import "errors"

var (
	// ErrNotFound is returned by repositories when no row has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by repositories when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate key")
)
