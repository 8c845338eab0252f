package usecase

import (
	"context"
	"errors"
	"fmt"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/apperror"
)

// PlantRepository persists the plant catalog.
type PlantRepository interface {
	Create(ctx context.Context, p *entity.Plant) error
	List(ctx context.Context, page Page) ([]entity.Plant, error)
	FindByID(ctx context.Context, id uint) (*entity.Plant, error)
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uint, mutate func(*entity.Plant) error) (*entity.Plant, error)
	// Delete removes the plant and its planting links.
	Delete(ctx context.Context, id uint) error
}

type plantUsecase struct {
	plants PlantRepository
}

// NewPlantUsecase creates a plantUsecase.
func NewPlantUsecase(plants PlantRepository) *plantUsecase {
	return &plantUsecase{plants: plants}
}

func (u *plantUsecase) Create(ctx context.Context, p *entity.Plant) (*entity.Plant, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := u.plants.Create(ctx, p); err != nil {
		return nil, plantError(err, p.ID, p.DisplayName())
	}
	return p, nil
}

func (u *plantUsecase) List(ctx context.Context, offset, limit int) ([]entity.Plant, error) {
	ps, err := u.plants.List(ctx, NewPage(offset, limit))
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return ps, nil
}

func (u *plantUsecase) Get(ctx context.Context, id uint) (*entity.Plant, error) {
	p, err := u.plants.FindByID(ctx, id)
	if err != nil {
		return nil, plantError(err, id, "")
	}
	return p, nil
}

func (u *plantUsecase) Update(ctx context.Context, id uint, patch entity.PlantPatch) (*entity.Plant, error) {
	var display string
	p, err := u.plants.Update(ctx, id, func(p *entity.Plant) error {
		if err := p.Apply(patch); err != nil {
			return err
		}
		display = p.DisplayName()
		return nil
	})
	if err != nil {
		return nil, plantError(err, id, display)
	}
	return p, nil
}

func (u *plantUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.plants.Delete(ctx, id); err != nil {
		return plantError(err, id, "")
	}
	return nil
}

func plantError(err error, id uint, display string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NotFoundf("Plant with ID %d not found", id)
	case errors.Is(err, ErrDuplicate):
		return apperror.Conflictf("Plant %s already exists", display)
	case apperror.KindOf(err) != apperror.KindInternal:
		return err
	default:
		return fmt.Errorf("plant %d: %w", id, err)
	}
}
