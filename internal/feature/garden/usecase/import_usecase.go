package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"garden_backend/internal/feature/garden/domain/entity"
)

// Demo data created by SeedDemo.
const (
	DemoBedName         = "Vegetable Plot"
	DemoPlantingName    = "Tomato"
	DemoPlantingVariety = "Cherry"
)

// ImportResult counts the outcome of a catalog import.
type ImportResult struct {
	Created int
	Skipped int
	Failed  int
}

// DemoBedStore counts beds and inserts a bed together with its plantings
// atomically.
type DemoBedStore interface {
	Count(ctx context.Context) (int64, error)
	CreateWithPlantings(ctx context.Context, b *entity.Bed, plantings []entity.Planting) error
}

// ImportUsecase loads reference plants and optional demo data.
type ImportUsecase struct {
	plants PlantRepository
	beds   DemoBedStore
}

// NewImportUsecase creates an ImportUsecase.
func NewImportUsecase(plants PlantRepository, beds DemoBedStore) *ImportUsecase {
	return &ImportUsecase{plants: plants, beds: beds}
}

// ImportPlants inserts every plant, skipping ones whose (name_common, variety)
// already exists. A single bad record is logged and does not stop the import.
func (u *ImportUsecase) ImportPlants(ctx context.Context, plants []entity.Plant) (ImportResult, error) {
	var res ImportResult
	for i := range plants {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := plants[i]
		p.ID = 0
		if err := p.Validate(); err != nil {
			slog.Warn("skipping invalid plant record", "index", i, "error", err)
			res.Failed++
			continue
		}
		err := u.plants.Create(ctx, &p)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, ErrDuplicate):
			res.Skipped++
		default:
			slog.Error("failed to import plant", "plant", p.DisplayName(), "error", err)
			res.Failed++
		}
	}
	return res, nil
}

// SeedPlants imports plants only when the catalog is empty.
func (u *ImportUsecase) SeedPlants(ctx context.Context, plants []entity.Plant) (ImportResult, error) {
	n, err := u.plants.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("count plants: %w", err)
	}
	if n > 0 {
		return ImportResult{Skipped: len(plants)}, nil
	}
	return u.ImportPlants(ctx, plants)
}

// SeedDemo creates a demo bed with one planting when no beds exist.
// It reports whether anything was created.
func (u *ImportUsecase) SeedDemo(ctx context.Context) (bool, error) {
	n, err := u.beds.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count beds: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	soil := entity.SoilTypeLoam
	zone := entity.IrrigationZoneVegetables
	bed := &entity.Bed{Name: DemoBedName, SoilType: &soil, IrrigationZone: &zone}

	variety := DemoPlantingVariety
	notes := ""
	plantings := []entity.Planting{{Name: DemoPlantingName, Variety: &variety, Notes: &notes}}
	if err := u.beds.CreateWithPlantings(ctx, bed, plantings); err != nil {
		return false, fmt.Errorf("create demo bed: %w", err)
	}
	return true, nil
}
