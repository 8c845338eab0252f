package usecase

import (
	"context"
	"errors"
	"fmt"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/apperror"
)

// BedRepository persists beds.
type BedRepository interface {
	Create(ctx context.Context, b *entity.Bed) error
	List(ctx context.Context, page Page) ([]entity.Bed, error)
	// FindByID returns the bed with its garden preloaded.
	FindByID(ctx context.Context, id uint) (*entity.Bed, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uint, mutate func(*entity.Bed) error) (*entity.Bed, error)
	// Delete detaches the bed's plantings and removes the bed.
	Delete(ctx context.Context, id uint) error
}

// GardenChecker reports whether a garden id resolves.
type GardenChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type bedUsecase struct {
	beds    BedRepository
	gardens GardenChecker
}

// NewBedUsecase creates a bedUsecase.
func NewBedUsecase(beds BedRepository, gardens GardenChecker) *bedUsecase {
	return &bedUsecase{beds: beds, gardens: gardens}
}

func (u *bedUsecase) Create(ctx context.Context, b *entity.Bed) (*entity.Bed, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := u.checkGarden(ctx, b.GardenID); err != nil {
		return nil, err
	}
	if err := u.beds.Create(ctx, b); err != nil {
		return nil, bedError(err, b.ID, b.Name)
	}
	return b, nil
}

func (u *bedUsecase) List(ctx context.Context, offset, limit int) ([]entity.Bed, error) {
	bs, err := u.beds.List(ctx, NewPage(offset, limit))
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	return bs, nil
}

func (u *bedUsecase) Get(ctx context.Context, id uint) (*entity.Bed, error) {
	b, err := u.beds.FindByID(ctx, id)
	if err != nil {
		return nil, bedError(err, id, "")
	}
	return b, nil
}

func (u *bedUsecase) Update(ctx context.Context, id uint, patch entity.BedPatch) (*entity.Bed, error) {
	if patch.GardenID.Set && !patch.GardenID.Null {
		if err := u.checkGarden(ctx, &patch.GardenID.Val); err != nil {
			return nil, err
		}
	}
	b, err := u.beds.Update(ctx, id, func(b *entity.Bed) error {
		return b.Apply(patch)
	})
	if err != nil {
		return nil, bedError(err, id, patch.Name.Val)
	}
	return b, nil
}

func (u *bedUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.beds.Delete(ctx, id); err != nil {
		return bedError(err, id, "")
	}
	return nil
}

// SoilTypes lists the accepted soil types.
func (u *bedUsecase) SoilTypes() []entity.SoilType {
	return entity.SoilTypeValues()
}

// IrrigationZones lists the accepted irrigation zones.
func (u *bedUsecase) IrrigationZones() []entity.IrrigationZone {
	return entity.IrrigationZoneValues()
}

func (u *bedUsecase) checkGarden(ctx context.Context, gardenID *uint) error {
	if gardenID == nil {
		return nil
	}
	ok, err := u.gardens.Exists(ctx, *gardenID)
	if err != nil {
		return fmt.Errorf("check garden %d: %w", *gardenID, err)
	}
	if !ok {
		return apperror.Validationf("Garden with ID %d not found", *gardenID)
	}
	return nil
}

func bedError(err error, id uint, name string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NotFoundf("Bed with ID %d not found", id)
	case errors.Is(err, ErrDuplicate):
		return apperror.Conflictf("Bed with name %s already exists", name)
	case apperror.KindOf(err) != apperror.KindInternal:
		return err
	default:
		return fmt.Errorf("bed %d: %w", id, err)
	}
}
