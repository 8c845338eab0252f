package dto

import (
	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/optional"
)

// CreatePlantingRequest is the body of POST /api/plantings/.
type CreatePlantingRequest struct {
	Name     string  `json:"name" form:"name" binding:"required"`
	Variety  *string `json:"variety" form:"variety"`
	Notes    *string `json:"notes" form:"notes"`
	BedID    *uint   `json:"bed_id" form:"bed_id"`
	PlantIDs []uint  `json:"plant_ids" form:"plant_ids"`
}

func (r CreatePlantingRequest) ToEntity() *entity.Planting {
	return &entity.Planting{Name: r.Name, Variety: r.Variety, Notes: r.Notes, BedID: r.BedID}
}

// UpdatePlantingRequest is the body of PATCH /api/plantings/{id}.
type UpdatePlantingRequest struct {
	Name     optional.Value[string] `json:"name"`
	Variety  optional.Value[string] `json:"variety"`
	Notes    optional.Value[string] `json:"notes"`
	BedID    optional.Value[uint]   `json:"bed_id"`
	PlantIDs optional.Value[[]uint] `json:"plant_ids"`
}

func (r UpdatePlantingRequest) ToPatch() entity.PlantingPatch {
	return entity.PlantingPatch{
		Name:     r.Name,
		Variety:  r.Variety,
		Notes:    r.Notes,
		BedID:    r.BedID,
		PlantIDs: r.PlantIDs,
	}
}

type PlantingResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Variety *string         `json:"variety"`
	Notes   *string         `json:"notes"`
	BedID   *uint           `json:"bed_id"`
	Plants  []PlantResponse `json:"plants"`
}

// PlantingWithBedResponse is the single-planting read shape.
type PlantingWithBedResponse struct {
	PlantingResponse
	Bed *BedResponse `json:"bed"`
}

func NewPlantingResponse(p *entity.Planting) PlantingResponse {
	return PlantingResponse{
		ID:      p.ID,
		Name:    p.Name,
		Variety: p.Variety,
		Notes:   p.Notes,
		BedID:   p.BedID,
		Plants:  NewPlantListResponse(p.Plants),
	}
}

func NewPlantingWithBedResponse(p *entity.Planting) PlantingWithBedResponse {
	out := PlantingWithBedResponse{PlantingResponse: NewPlantingResponse(p)}
	if p.Bed != nil {
		b := NewBedResponse(p.Bed)
		out.Bed = &b
	}
	return out
}

func NewPlantingListResponse(ps []entity.Planting) []PlantingResponse {
	out := make([]PlantingResponse, 0, len(ps))
	for i := range ps {
		out = append(out, NewPlantingResponse(&ps[i]))
	}
	return out
}
