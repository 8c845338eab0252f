// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when creating a user whose username already exists.
	ErrUsernameTaken = errors.New("username already exists")
)
