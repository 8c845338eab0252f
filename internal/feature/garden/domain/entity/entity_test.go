package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

func ptr[T any](v T) *T { return &v }

func TestEnumValues(t *testing.T) {
	assert.Len(t, GardenTypeValues(), 9)
	assert.Len(t, ClimaticZoneValues(), 5)
	assert.Len(t, SoilTypeValues(), 7)
	assert.Len(t, IrrigationZoneValues(), 4)

	assert.True(t, SoilType("Seed Raising Mix").Valid())
	assert.True(t, GardenType("Small Holding").Valid())
	assert.False(t, SoilType("SeedRaisingMix").Valid())
	assert.False(t, IrrigationZone("vegetables").Valid())

	// accessor returns a copy
	values := SoilTypeValues()
	values[0] = "Gravel"
	assert.Equal(t, SoilTypeLoam, SoilTypeValues()[0])
}

func TestBed_Apply(t *testing.T) {
	tests := []struct {
		name    string
		start   Bed
		patch   BedPatch
		want    Bed
		wantErr apperror.Kind
	}{
		{
			name:  "rename keeps irrigation zone",
			start: Bed{ID: 1, Name: "Plot A", IrrigationZone: ptr(IrrigationZoneVegetables)},
			patch: BedPatch{Name: optional.Of("Plot B")},
			want:  Bed{ID: 1, Name: "Plot B", IrrigationZone: ptr(IrrigationZoneVegetables)},
		},
		{
			name:  "empty patch changes nothing",
			start: Bed{ID: 2, Name: "Herbs", SoilType: ptr(SoilTypeLoam), GardenID: ptr(uint(3))},
			patch: BedPatch{},
			want:  Bed{ID: 2, Name: "Herbs", SoilType: ptr(SoilTypeLoam), GardenID: ptr(uint(3))},
		},
		{
			name:  "null clears nullable fields",
			start: Bed{ID: 3, Name: "Herbs", SoilType: ptr(SoilTypeClay), GardenID: ptr(uint(1))},
			patch: BedPatch{SoilType: optional.Null[SoilType](), GardenID: optional.Null[uint]()},
			want:  Bed{ID: 3, Name: "Herbs"},
		},
		{
			name:    "invalid enum is rejected",
			start:   Bed{ID: 4, Name: "Herbs"},
			patch:   BedPatch{SoilType: optional.Of(SoilType("Gravel"))},
			wantErr: apperror.KindValidation,
		},
		{
			name:    "null name is rejected",
			start:   Bed{ID: 5, Name: "Herbs"},
			patch:   BedPatch{Name: optional.Null[string]()},
			wantErr: apperror.KindValidation,
		},
		{
			name:    "blank name is rejected",
			start:   Bed{ID: 6, Name: "Herbs"},
			patch:   BedPatch{Name: optional.Of("  ")},
			wantErr: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.start
			err := b.Apply(tt.patch)
			if tt.wantErr != apperror.KindInternal {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestGarden_Apply(t *testing.T) {
	g := Garden{ID: 1, Name: "Home", Type: ptr(GardenTypeSuburban), Location: ptr("Backyard")}

	err := g.Apply(GardenPatch{Zone: optional.Of(ClimaticZoneTemperate), Location: optional.Of("")})
	require.NoError(t, err)

	assert.Equal(t, "Home", g.Name)
	assert.Equal(t, GardenTypeSuburban, *g.Type)
	assert.Equal(t, ClimaticZoneTemperate, *g.Zone)
	require.NotNil(t, g.Location)
	assert.Equal(t, "", *g.Location)

	err = g.Apply(GardenPatch{Type: optional.Of(GardenType("Farm"))})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestPlanting_Apply(t *testing.T) {
	p := Planting{ID: 1, Name: "Tomato", Variety: ptr("Cherry"), BedID: ptr(uint(2)), Bed: &Bed{ID: 2, Name: "Veg"}}

	err := p.Apply(PlantingPatch{Notes: optional.Of("stake early"), BedID: optional.Of(uint(5))})
	require.NoError(t, err)

	assert.Equal(t, "Tomato", p.Name)
	assert.Equal(t, "Cherry", *p.Variety)
	assert.Equal(t, "stake early", *p.Notes)
	assert.Equal(t, uint(5), *p.BedID)
	assert.Nil(t, p.Bed)
}

func TestPlant_Apply(t *testing.T) {
	p := Plant{ID: 1, NameCommon: "Tomato", Variety: "Cherry", Hints: ptr("full sun")}

	err := p.Apply(PlantPatch{Variety: optional.Null[string](), FamilyGroup: optional.Of("Solanaceae")})
	require.NoError(t, err)

	assert.Equal(t, "", p.Variety)
	assert.Equal(t, "Solanaceae", *p.FamilyGroup)
	assert.Equal(t, "full sun", *p.Hints)
	assert.Equal(t, "Tomato", p.DisplayName())

	err = p.Apply(PlantPatch{NameCommon: optional.Of("")})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestValidate_Required(t *testing.T) {
	assert.Error(t, (&Garden{}).Validate())
	assert.Error(t, (&Bed{}).Validate())
	assert.Error(t, (&Planting{}).Validate())
	assert.Error(t, (&Plant{}).Validate())
	assert.NoError(t, (&Plant{NameCommon: "Basil"}).Validate())
}
