package entity

import (
	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

// Planting is one crop sown in a bed. It may reference catalog plants.
type Planting struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"size:255;not null;index"`
	Variety *string `gorm:"size:255"`
	Notes   *string `gorm:"type:text"`
	BedID   *uint   `gorm:"index"`

	Bed    *Bed    `gorm:"foreignKey:BedID"`
	Plants []Plant `gorm:"many2many:planting_plants;constraint:OnDelete:CASCADE"`
}

// PlantingPatch is a partial update of a Planting. PlantIDs replaces the set
// of referenced plants when present; null or an empty list clears it.
type PlantingPatch struct {
	Name     optional.Value[string]
	Variety  optional.Value[string]
	Notes    optional.Value[string]
	BedID    optional.Value[uint]
	PlantIDs optional.Value[[]uint]
}

func (p *Planting) Validate() error {
	return requireText("name", p.Name)
}

// Apply merges the scalar fields present in patch onto p. PlantIDs is left to
// the caller since it needs a storage lookup.
func (p *Planting) Apply(patch PlantingPatch) error {
	if patch.Name.Set {
		if patch.Name.Null {
			return apperror.Validationf("name cannot be null")
		}
		p.Name = patch.Name.Val
	}
	if patch.Variety.Set {
		p.Variety = patch.Variety.Ptr()
	}
	if patch.Notes.Set {
		p.Notes = patch.Notes.Ptr()
	}
	if patch.BedID.Set {
		p.BedID = patch.BedID.Ptr()
		p.Bed = nil
	}
	return p.Validate()
}
