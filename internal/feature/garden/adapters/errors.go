// Package adapters provides the gorm-backed repositories of the garden feature.
package adapters

import (
	"errors"

	"gorm.io/gorm"

	"garden_backend/internal/feature/garden/usecase"
	infradb "garden_backend/internal/platform/db"
)

// translateError maps storage errors onto the usecase sentinels. Errors that
// already carry meaning (validation failures from a mutate func) pass through.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return usecase.ErrNotFound
	case infradb.IsDuplicate(err):
		return usecase.ErrDuplicate
	default:
		return err
	}
}
