package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

func catalog(plants ...entity.Plant) *mockPlantRepository {
	return &mockPlantRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]entity.Plant, error) {
			var out []entity.Plant
			for _, p := range plants {
				for _, id := range ids {
					if p.ID == id {
						out = append(out, p)
					}
				}
			}
			return out, nil
		},
	}
}

func bedsWith(ids ...uint) *mockBedRepository {
	return &mockBedRepository{
		ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
			for _, known := range ids {
				if known == id {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func TestPlantingUsecase_Create(t *testing.T) {
	plants := catalog(entity.Plant{ID: 1, NameCommon: "Tomato", Variety: "Cherry"}, entity.Plant{ID: 2, NameCommon: "Basil"})

	tests := []struct {
		name       string
		input      entity.Planting
		plantIDs   []uint
		wantPlants int
		wantDetail string
	}{
		{
			name:       "links plants once each",
			input:      entity.Planting{Name: "Tomato", BedID: ptr(uint(1))},
			plantIDs:   []uint{1, 2, 1},
			wantPlants: 2,
		},
		{
			name:  "no plants",
			input: entity.Planting{Name: "Lettuce"},
		},
		{
			name:       "unknown plant",
			input:      entity.Planting{Name: "Tomato"},
			plantIDs:   []uint{1, 5},
			wantDetail: "Plant with ID 5 not found",
		},
		{
			name:       "unknown bed",
			input:      entity.Planting{Name: "Tomato", BedID: ptr(uint(3))},
			wantDetail: "Bed with ID 3 not found",
		},
		{
			name:       "missing name",
			input:      entity.Planting{},
			wantDetail: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewPlantingUsecase(&mockPlantingRepository{}, bedsWith(1), plants)

			p := tt.input
			got, err := uc.Create(context.Background(), &p, tt.plantIDs)

			if tt.wantDetail != "" {
				require.Error(t, err)
				assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
				assert.Equal(t, tt.wantDetail, apperror.Detail(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.Plants, tt.wantPlants)
		})
	}
}

func TestPlantingUsecase_Update_PlantIDs(t *testing.T) {
	var gotPlants *[]entity.Plant
	repo := &mockPlantingRepository{
		UpdateFunc: func(ctx context.Context, id uint, mutate func(*entity.Planting) error, plants *[]entity.Plant) (*entity.Planting, error) {
			gotPlants = plants
			p := entity.Planting{ID: id, Name: "Tomato"}
			if err := mutate(&p); err != nil {
				return nil, err
			}
			return &p, nil
		},
	}
	uc := NewPlantingUsecase(repo, bedsWith(), catalog(entity.Plant{ID: 2, NameCommon: "Basil"}))
	ctx := context.Background()

	_, err := uc.Update(ctx, 1, entity.PlantingPatch{Notes: optional.Of("mulch")})
	require.NoError(t, err)
	assert.Nil(t, gotPlants, "absent plant_ids must not touch links")

	_, err = uc.Update(ctx, 1, entity.PlantingPatch{PlantIDs: optional.Of([]uint{2})})
	require.NoError(t, err)
	require.NotNil(t, gotPlants)
	assert.Len(t, *gotPlants, 1)

	_, err = uc.Update(ctx, 1, entity.PlantingPatch{PlantIDs: optional.Null[[]uint]()})
	require.NoError(t, err)
	require.NotNil(t, gotPlants)
	assert.Empty(t, *gotPlants)
}

func TestPlantingUsecase_Get_NotFound(t *testing.T) {
	uc := NewPlantingUsecase(&mockPlantingRepository{}, bedsWith(), catalog())

	_, err := uc.Get(context.Background(), 3)

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "Planting with ID 3 not found", apperror.Detail(err))
}
