package entity

import (
	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

// Plant is catalog reference data. (NameCommon, Variety) is unique; a plant
// without a variety stores the empty string so two of them still collide.
type Plant struct {
	ID              uint    `gorm:"primaryKey"`
	NameCommon      string  `gorm:"size:255;not null;uniqueIndex:idx_plants_name_variety,priority:1"`
	Variety         string  `gorm:"size:255;not null;default:'';index;uniqueIndex:idx_plants_name_variety,priority:2"`
	NameBotanical   *string `gorm:"size:255"`
	FamilyGroup     *string `gorm:"size:255"`
	Harvest         *string `gorm:"type:text"`
	Hints           *string `gorm:"type:text"`
	WatchFor        *string `gorm:"type:text"`
	ProvenVarieties *string `gorm:"type:text"`
}

// PlantPatch is a partial update of a Plant.
type PlantPatch struct {
	NameCommon      optional.Value[string]
	Variety         optional.Value[string]
	NameBotanical   optional.Value[string]
	FamilyGroup     optional.Value[string]
	Harvest         optional.Value[string]
	Hints           optional.Value[string]
	WatchFor        optional.Value[string]
	ProvenVarieties optional.Value[string]
}

func (p *Plant) Validate() error {
	return requireText("name_common", p.NameCommon)
}

// Apply merges the fields present in patch onto p and revalidates the result.
// A null variety is stored as the empty string.
func (p *Plant) Apply(patch PlantPatch) error {
	if patch.NameCommon.Set {
		if patch.NameCommon.Null {
			return apperror.Validationf("name_common cannot be null")
		}
		p.NameCommon = patch.NameCommon.Val
	}
	if patch.Variety.Set {
		p.Variety = patch.Variety.Val
	}
	if patch.NameBotanical.Set {
		p.NameBotanical = patch.NameBotanical.Ptr()
	}
	if patch.FamilyGroup.Set {
		p.FamilyGroup = patch.FamilyGroup.Ptr()
	}
	if patch.Harvest.Set {
		p.Harvest = patch.Harvest.Ptr()
	}
	if patch.Hints.Set {
		p.Hints = patch.Hints.Ptr()
	}
	if patch.WatchFor.Set {
		p.WatchFor = patch.WatchFor.Ptr()
	}
	if patch.ProvenVarieties.Set {
		p.ProvenVarieties = patch.ProvenVarieties.Ptr()
	}
	return p.Validate()
}

// DisplayName is "NameCommon (Variety)" or just NameCommon.
func (p *Plant) DisplayName() string {
	if p.Variety == "" {
		return p.NameCommon
	}
	return p.NameCommon + " (" + p.Variety + ")"
}
