package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/usecase"
	"garden_backend/internal/shared/optional"
)

func plantNames(ps []entity.Plant) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.DisplayName())
	}
	return out
}

func TestPlantingGorm_PlantLinks(t *testing.T) {
	db := setupTestDB(t)
	plants := NewPlantRepository(db)
	plantings := NewPlantingRepository(db)
	ctx := context.Background()

	cherry := &entity.Plant{NameCommon: "Tomato", Variety: "Cherry"}
	basil := &entity.Plant{NameCommon: "Basil"}
	require.NoError(t, plants.Create(ctx, cherry))
	require.NoError(t, plants.Create(ctx, basil))

	p := &entity.Planting{Name: "Summer tomatoes", Variety: ptr("Cherry")}
	require.NoError(t, plantings.Create(ctx, p, []entity.Plant{*cherry, *basil}))

	found, err := plantings.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato (Cherry)", "Basil"}, plantNames(found.Plants))

	t.Run("update without plant ids keeps links", func(t *testing.T) {
		updated, err := plantings.Update(ctx, p.ID, func(p *entity.Planting) error {
			return p.Apply(entity.PlantingPatch{Notes: optional.Of("water daily")})
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "water daily", *updated.Notes)
		assert.Len(t, updated.Plants, 2)
	})

	t.Run("replace links", func(t *testing.T) {
		updated, err := plantings.Update(ctx, p.ID, func(p *entity.Planting) error { return nil }, &[]entity.Plant{*basil})
		require.NoError(t, err)
		assert.Equal(t, []string{"Basil"}, plantNames(updated.Plants))
	})

	t.Run("clear links", func(t *testing.T) {
		updated, err := plantings.Update(ctx, p.ID, func(p *entity.Planting) error { return nil }, &[]entity.Plant{})
		require.NoError(t, err)
		assert.Empty(t, updated.Plants)
	})
}

func TestPlantingGorm_List(t *testing.T) {
	plantings := NewPlantingRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Tomato", "Tomato", "Lettuce"} {
		require.NoError(t, plantings.Create(ctx, &entity.Planting{Name: name}, nil))
	}

	ps, err := plantings.List(ctx, usecase.Page{Offset: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Tomato", ps[0].Name)
	assert.Equal(t, "Lettuce", ps[1].Name)
}

func TestPlantingGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	plants := NewPlantRepository(db)
	plantings := NewPlantingRepository(db)
	ctx := context.Background()

	basil := &entity.Plant{NameCommon: "Basil"}
	require.NoError(t, plants.Create(ctx, basil))
	p := &entity.Planting{Name: "Herbs"}
	require.NoError(t, plantings.Create(ctx, p, []entity.Plant{*basil}))

	require.NoError(t, plantings.Delete(ctx, p.ID))

	_, err := plantings.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	var links int64
	require.NoError(t, db.Table("planting_plants").Count(&links).Error)
	assert.Zero(t, links)

	// catalog entry is untouched
	_, err = plants.FindByID(ctx, basil.ID)
	assert.NoError(t, err)
}
