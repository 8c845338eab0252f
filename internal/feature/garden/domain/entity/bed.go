package entity

import (
	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

// Bed is a planting area. GardenID is optional; a bed may stand on its own.
type Bed struct {
	ID             uint            `gorm:"primaryKey"`
	Name           string          `gorm:"size:255;not null;uniqueIndex"`
	SoilType       *SoilType       `gorm:"size:32"`
	IrrigationZone *IrrigationZone `gorm:"size:32"`
	GardenID       *uint           `gorm:"index"`

	Garden    *Garden    `gorm:"foreignKey:GardenID"`
	Plantings []Planting `gorm:"foreignKey:BedID;constraint:OnDelete:SET NULL"`
}

// BedPatch is a partial update of a Bed.
type BedPatch struct {
	Name           optional.Value[string]
	SoilType       optional.Value[SoilType]
	IrrigationZone optional.Value[IrrigationZone]
	GardenID       optional.Value[uint]
}

func (b *Bed) Validate() error {
	if err := requireText("name", b.Name); err != nil {
		return err
	}
	if b.SoilType != nil && !b.SoilType.Valid() {
		return apperror.Validationf("invalid soil type %q", *b.SoilType)
	}
	if b.IrrigationZone != nil && !b.IrrigationZone.Valid() {
		return apperror.Validationf("invalid irrigation zone %q", *b.IrrigationZone)
	}
	return nil
}

// Apply merges the fields present in p onto b and revalidates the result.
// A changed GardenID drops any preloaded Garden.
func (b *Bed) Apply(p BedPatch) error {
	if p.Name.Set {
		if p.Name.Null {
			return apperror.Validationf("name cannot be null")
		}
		b.Name = p.Name.Val
	}
	if p.SoilType.Set {
		b.SoilType = p.SoilType.Ptr()
	}
	if p.IrrigationZone.Set {
		b.IrrigationZone = p.IrrigationZone.Ptr()
	}
	if p.GardenID.Set {
		b.GardenID = p.GardenID.Ptr()
		b.Garden = nil
	}
	return b.Validate()
}
