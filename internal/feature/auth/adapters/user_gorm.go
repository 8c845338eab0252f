// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"garden_backend/internal/feature/auth/domain/entity"
	"garden_backend/internal/feature/auth/usecase"
	infradb "garden_backend/internal/platform/db"
)

// userGorm is the gorm implementation of usecase.UserRepository.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a user repository on db.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts u. A taken username yields usecase.ErrUsernameTaken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if infradb.IsDuplicate(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
