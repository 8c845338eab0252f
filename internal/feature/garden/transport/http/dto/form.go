package dto

import "strings"

// blank returns nil for a missing or whitespace-only value. HTML forms send
// an empty string for an unselected <select> or an untouched text input.
func blank[T ~string](v *T) *T {
	if v == nil || strings.TrimSpace(string(*v)) == "" {
		return nil
	}
	return v
}

// zeroID returns nil for id 0, which is what gin binds from "field=".
func zeroID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func nonZeroIDs(ids []uint) []uint {
	out := ids[:0]
	for _, id := range ids {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

// DropBlank clears the optional fields a form left empty.
func (r *CreateGardenRequest) DropBlank() {
	r.Type = blank(r.Type)
	r.Location = blank(r.Location)
	r.Zone = blank(r.Zone)
}

// DropBlank clears the optional fields a form left empty.
func (r *CreateBedRequest) DropBlank() {
	r.SoilType = blank(r.SoilType)
	r.IrrigationZone = blank(r.IrrigationZone)
	r.GardenID = zeroID(r.GardenID)
}

// DropBlank clears the optional fields a form left empty.
func (r *CreatePlantingRequest) DropBlank() {
	r.Variety = blank(r.Variety)
	r.Notes = blank(r.Notes)
	r.BedID = zeroID(r.BedID)
	r.PlantIDs = nonZeroIDs(r.PlantIDs)
}

// DropBlank clears the optional fields a form left empty.
func (r *CreatePlantRequest) DropBlank() {
	r.Variety = blank(r.Variety)
	r.NameBotanical = blank(r.NameBotanical)
	r.FamilyGroup = blank(r.FamilyGroup)
	r.Harvest = blank(r.Harvest)
	r.Hints = blank(r.Hints)
	r.WatchFor = blank(r.WatchFor)
	r.ProvenVarieties = blank(r.ProvenVarieties)
}
