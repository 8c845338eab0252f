package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"garden_backend/internal/feature/auth/domain/entity"
	"garden_backend/internal/shared/apperror"
)

// dummyHash is compared against when the user does not exist so that a
// failed login costs the same with or without a matching username.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for users.
// Interfaces are declared by the consumer (usecase), not by the adapters.
type UserRepository interface {
	// Create persists a new user. A taken username yields ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenGenerator signs access tokens.
type TokenGenerator interface {
	GenerateToken(username string) (string, error)
}

// Registration is the input of Register.
type Registration struct {
	Username  string
	Password  string
	Password2 string
	Email     string
	Gardener  bool
}

type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates the registration and login usecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register validates r, hashes the password and stores the user.
func (u *authUsecase) Register(ctx context.Context, r Registration) (*entity.User, error) {
	user := &entity.User{Username: r.Username, Email: r.Email, Gardener: r.Gardener}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(r.Password, r.Password2); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, apperror.Wrap(apperror.KindConflict, err, fmt.Sprintf("Username %s is taken", r.Username))
		}
		return nil, fmt.Errorf("create user %s: %w", r.Username, err)
	}
	return user, nil
}

// Login checks the credentials and returns a signed token.
// The bcrypt comparison runs even when the user does not exist.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("find user %s: %w", username, err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", apperror.Unauthorizedf("Invalid username and/or password")
	}

	token, err := u.tokens.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// CurrentUser loads the user a verified token was issued to.
func (u *authUsecase) CurrentUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperror.Unauthorizedf("Could not validate credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}
	return user, nil
}
