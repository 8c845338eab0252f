package usecase

import (
	"context"
	"errors"
	"fmt"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/apperror"
)

// PlantingRepository persists plantings and their plant references.
type PlantingRepository interface {
	// Create inserts p and links it to plants.
	Create(ctx context.Context, p *entity.Planting, plants []entity.Plant) error
	List(ctx context.Context, page Page) ([]entity.Planting, error)
	// FindByID returns the planting with its bed and plants preloaded.
	FindByID(ctx context.Context, id uint) (*entity.Planting, error)
	// Update runs mutate and, when plants is non-nil, replaces the linked plants.
	Update(ctx context.Context, id uint, mutate func(*entity.Planting) error, plants *[]entity.Plant) (*entity.Planting, error)
	Delete(ctx context.Context, id uint) error
}

// BedChecker reports whether a bed id resolves.
type BedChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// PlantFinder resolves plant ids.
type PlantFinder interface {
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Plant, error)
}

type plantingUsecase struct {
	plantings PlantingRepository
	beds      BedChecker
	plants    PlantFinder
}

// NewPlantingUsecase creates a plantingUsecase.
func NewPlantingUsecase(plantings PlantingRepository, beds BedChecker, plants PlantFinder) *plantingUsecase {
	return &plantingUsecase{plantings: plantings, beds: beds, plants: plants}
}

func (u *plantingUsecase) Create(ctx context.Context, p *entity.Planting, plantIDs []uint) (*entity.Planting, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := u.checkBed(ctx, p.BedID); err != nil {
		return nil, err
	}
	plants, err := u.resolvePlants(ctx, plantIDs)
	if err != nil {
		return nil, err
	}
	if err := u.plantings.Create(ctx, p, plants); err != nil {
		return nil, plantingError(err, p.ID)
	}
	return p, nil
}

func (u *plantingUsecase) List(ctx context.Context, offset, limit int) ([]entity.Planting, error) {
	ps, err := u.plantings.List(ctx, NewPage(offset, limit))
	if err != nil {
		return nil, fmt.Errorf("list plantings: %w", err)
	}
	return ps, nil
}

func (u *plantingUsecase) Get(ctx context.Context, id uint) (*entity.Planting, error) {
	p, err := u.plantings.FindByID(ctx, id)
	if err != nil {
		return nil, plantingError(err, id)
	}
	return p, nil
}

func (u *plantingUsecase) Update(ctx context.Context, id uint, patch entity.PlantingPatch) (*entity.Planting, error) {
	if patch.BedID.Set && !patch.BedID.Null {
		if err := u.checkBed(ctx, &patch.BedID.Val); err != nil {
			return nil, err
		}
	}
	var plants *[]entity.Plant
	if patch.PlantIDs.Set {
		resolved, err := u.resolvePlants(ctx, patch.PlantIDs.Val)
		if err != nil {
			return nil, err
		}
		plants = &resolved
	}
	p, err := u.plantings.Update(ctx, id, func(p *entity.Planting) error {
		return p.Apply(patch)
	}, plants)
	if err != nil {
		return nil, plantingError(err, id)
	}
	return p, nil
}

func (u *plantingUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.plantings.Delete(ctx, id); err != nil {
		return plantingError(err, id)
	}
	return nil
}

func (u *plantingUsecase) checkBed(ctx context.Context, bedID *uint) error {
	if bedID == nil {
		return nil
	}
	ok, err := u.beds.Exists(ctx, *bedID)
	if err != nil {
		return fmt.Errorf("check bed %d: %w", *bedID, err)
	}
	if !ok {
		return apperror.Validationf("Bed with ID %d not found", *bedID)
	}
	return nil
}

// resolvePlants loads every id once; any unknown id fails validation.
func (u *plantingUsecase) resolvePlants(ctx context.Context, ids []uint) ([]entity.Plant, error) {
	if len(ids) == 0 {
		return []entity.Plant{}, nil
	}
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	plants, err := u.plants.FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("load plants: %w", err)
	}
	if len(plants) != len(unique) {
		found := make(map[uint]struct{}, len(plants))
		for _, p := range plants {
			found[p.ID] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				return nil, apperror.Validationf("Plant with ID %d not found", id)
			}
		}
	}
	return plants, nil
}

func plantingError(err error, id uint) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NotFoundf("Planting with ID %d not found", id)
	case apperror.KindOf(err) != apperror.KindInternal:
		return err
	default:
		return fmt.Errorf("planting %d: %w", id, err)
	}
}
