package usecase

import (
	"context"
	"errors"
	"fmt"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/apperror"
)

// GardenRepository persists gardens.
// Interfaces are declared by the consumer (usecase), not by the adapters.
type GardenRepository interface {
	Create(ctx context.Context, g *entity.Garden) error
	List(ctx context.Context, page Page) ([]entity.Garden, error)
	// FindByID returns the garden with its beds preloaded.
	FindByID(ctx context.Context, id uint) (*entity.Garden, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Update loads the garden, runs mutate on it and saves it in one transaction.
	Update(ctx context.Context, id uint, mutate func(*entity.Garden) error) (*entity.Garden, error)
	// Delete detaches the garden's beds and removes the garden.
	Delete(ctx context.Context, id uint) error
}

type gardenUsecase struct {
	gardens GardenRepository
}

// NewGardenUsecase creates a gardenUsecase.
func NewGardenUsecase(gardens GardenRepository) *gardenUsecase {
	return &gardenUsecase{gardens: gardens}
}

func (u *gardenUsecase) Create(ctx context.Context, g *entity.Garden) (*entity.Garden, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := u.gardens.Create(ctx, g); err != nil {
		return nil, gardenError(err, g.ID, g.Name)
	}
	return g, nil
}

func (u *gardenUsecase) List(ctx context.Context, offset, limit int) ([]entity.Garden, error) {
	gs, err := u.gardens.List(ctx, NewPage(offset, limit))
	if err != nil {
		return nil, fmt.Errorf("list gardens: %w", err)
	}
	return gs, nil
}

func (u *gardenUsecase) Get(ctx context.Context, id uint) (*entity.Garden, error) {
	g, err := u.gardens.FindByID(ctx, id)
	if err != nil {
		return nil, gardenError(err, id, "")
	}
	return g, nil
}

func (u *gardenUsecase) Update(ctx context.Context, id uint, patch entity.GardenPatch) (*entity.Garden, error) {
	g, err := u.gardens.Update(ctx, id, func(g *entity.Garden) error {
		return g.Apply(patch)
	})
	if err != nil {
		return nil, gardenError(err, id, patch.Name.Val)
	}
	return g, nil
}

func (u *gardenUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.gardens.Delete(ctx, id); err != nil {
		return gardenError(err, id, "")
	}
	return nil
}

func gardenError(err error, id uint, name string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NotFoundf("Garden with ID %d not found", id)
	case errors.Is(err, ErrDuplicate):
		return apperror.Conflictf("Garden with name %s already exists", name)
	case apperror.KindOf(err) != apperror.KindInternal:
		return err
	default:
		return fmt.Errorf("garden %d: %w", id, err)
	}
}
