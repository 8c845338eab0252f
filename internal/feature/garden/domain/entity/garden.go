// Package entity defines the garden domain: gardens, beds, plantings and the
// plant catalog, together with their partial-update rules.
package entity

import (
	"garden_backend/internal/shared/apperror"
	"garden_backend/internal/shared/optional"
)

// Garden is the top-level area that owns beds.
type Garden struct {
	ID       uint          `gorm:"primaryKey"`
	Name     string        `gorm:"size:255;not null;uniqueIndex"`
	Type     *GardenType   `gorm:"size:32"`
	Location *string       `gorm:"size:255"`
	Zone     *ClimaticZone `gorm:"size:32"`

	// Beds is only populated when explicitly preloaded.
	Beds []Bed `gorm:"foreignKey:GardenID;constraint:OnDelete:SET NULL"`
}

// GardenPatch is a partial update of a Garden.
type GardenPatch struct {
	Name     optional.Value[string]
	Type     optional.Value[GardenType]
	Location optional.Value[string]
	Zone     optional.Value[ClimaticZone]
}

// Validate checks the required name and the enum fields.
func (g *Garden) Validate() error {
	if err := requireText("name", g.Name); err != nil {
		return err
	}
	if g.Type != nil && !g.Type.Valid() {
		return apperror.Validationf("invalid garden type %q", *g.Type)
	}
	if g.Zone != nil && !g.Zone.Valid() {
		return apperror.Validationf("invalid climatic zone %q", *g.Zone)
	}
	return nil
}

// Apply merges the fields present in p onto g and revalidates the result.
func (g *Garden) Apply(p GardenPatch) error {
	if p.Name.Set {
		if p.Name.Null {
			return apperror.Validationf("name cannot be null")
		}
		g.Name = p.Name.Val
	}
	if p.Type.Set {
		g.Type = p.Type.Ptr()
	}
	if p.Location.Set {
		g.Location = p.Location.Ptr()
	}
	if p.Zone.Set {
		g.Zone = p.Zone.Ptr()
	}
	return g.Validate()
}
