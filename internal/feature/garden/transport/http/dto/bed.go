package dto

import (
	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/optional"
)

// CreateBedRequest is the body of POST /api/beds/.
type CreateBedRequest struct {
	Name           string                 `json:"name" form:"name" binding:"required"`
	SoilType       *entity.SoilType       `json:"soil_type" form:"soil_type"`
	IrrigationZone *entity.IrrigationZone `json:"irrigation_zone" form:"irrigation_zone"`
	GardenID       *uint                  `json:"garden_id" form:"garden_id"`
}

func (r CreateBedRequest) ToEntity() *entity.Bed {
	return &entity.Bed{
		Name:           r.Name,
		SoilType:       r.SoilType,
		IrrigationZone: r.IrrigationZone,
		GardenID:       r.GardenID,
	}
}

// UpdateBedRequest is the body of PATCH /api/beds/{id}.
type UpdateBedRequest struct {
	Name           optional.Value[string]                `json:"name"`
	SoilType       optional.Value[entity.SoilType]       `json:"soil_type"`
	IrrigationZone optional.Value[entity.IrrigationZone] `json:"irrigation_zone"`
	GardenID       optional.Value[uint]                  `json:"garden_id"`
}

func (r UpdateBedRequest) ToPatch() entity.BedPatch {
	return entity.BedPatch{
		Name:           r.Name,
		SoilType:       r.SoilType,
		IrrigationZone: r.IrrigationZone,
		GardenID:       r.GardenID,
	}
}

type BedResponse struct {
	ID             uint                   `json:"id"`
	Name           string                 `json:"name"`
	SoilType       *entity.SoilType       `json:"soil_type"`
	IrrigationZone *entity.IrrigationZone `json:"irrigation_zone"`
	GardenID       *uint                  `json:"garden_id"`
}

// BedWithGardenResponse is the single-bed read shape.
type BedWithGardenResponse struct {
	BedResponse
	Garden *GardenResponse `json:"garden"`
}

func NewBedResponse(b *entity.Bed) BedResponse {
	return BedResponse{
		ID:             b.ID,
		Name:           b.Name,
		SoilType:       b.SoilType,
		IrrigationZone: b.IrrigationZone,
		GardenID:       b.GardenID,
	}
}

func NewBedWithGardenResponse(b *entity.Bed) BedWithGardenResponse {
	out := BedWithGardenResponse{BedResponse: NewBedResponse(b)}
	if b.Garden != nil {
		g := NewGardenResponse(b.Garden)
		out.Garden = &g
	}
	return out
}

func NewBedListResponse(bs []entity.Bed) []BedResponse {
	out := make([]BedResponse, 0, len(bs))
	for i := range bs {
		out = append(out, NewBedResponse(&bs[i]))
	}
	return out
}
