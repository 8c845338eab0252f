// Package entity defines the domain entities for the auth feature.
package entity

import (
	"net/mail"
	"time"

	"garden_backend/internal/shared/apperror"
)

const (
	// MinPasswordLength and MaxPasswordLength bound a plaintext password.
	MinPasswordLength = 6
	MaxPasswordLength = 256
)

// User is a registered gardener.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:150;not null"`

	// Password is the bcrypt hash. It is never serialized.
	Password string `gorm:"size:255;not null"`

	Email string `gorm:"size:255;not null"`

	// Gardener has no column default: false is a legitimate value and gorm
	// would replace it with the default on insert.
	Gardener bool `gorm:"not null"`

	CreatedAt time.Time
}

// Validate checks the username and email of a new user.
func (u *User) Validate() error {
	if u.Username == "" {
		return apperror.Validationf("username is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperror.Validationf("email %q is not a valid address", u.Email)
	}
	return nil
}

// ValidatePassword checks the length of a plaintext password and its confirmation.
func ValidatePassword(password, confirm string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return apperror.Validationf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	}
	if password != confirm {
		return apperror.Validationf("passwords do not match")
	}
	return nil
}
