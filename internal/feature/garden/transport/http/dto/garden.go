// Package dto defines the request and response bodies of the garden HTTP API.
package dto

import (
	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/optional"
)

// CreateGardenRequest is the body of POST /api/gardens/. It binds from JSON or a form.
type CreateGardenRequest struct {
	Name     string               `json:"name" form:"name" binding:"required"`
	Type     *entity.GardenType   `json:"type" form:"type"`
	Location *string              `json:"location" form:"location"`
	Zone     *entity.ClimaticZone `json:"zone" form:"zone"`
}

func (r CreateGardenRequest) ToEntity() *entity.Garden {
	return &entity.Garden{Name: r.Name, Type: r.Type, Location: r.Location, Zone: r.Zone}
}

// UpdateGardenRequest is the body of PATCH /api/gardens/{id}.
type UpdateGardenRequest struct {
	Name     optional.Value[string]              `json:"name"`
	Type     optional.Value[entity.GardenType]   `json:"type"`
	Location optional.Value[string]              `json:"location"`
	Zone     optional.Value[entity.ClimaticZone] `json:"zone"`
}

func (r UpdateGardenRequest) ToPatch() entity.GardenPatch {
	return entity.GardenPatch{Name: r.Name, Type: r.Type, Location: r.Location, Zone: r.Zone}
}

type GardenResponse struct {
	ID       uint                 `json:"id"`
	Name     string               `json:"name"`
	Type     *entity.GardenType   `json:"type"`
	Location *string              `json:"location"`
	Zone     *entity.ClimaticZone `json:"zone"`
}

// GardenWithBedsResponse is the single-garden read shape.
type GardenWithBedsResponse struct {
	GardenResponse
	Beds []BedResponse `json:"beds"`
}

func NewGardenResponse(g *entity.Garden) GardenResponse {
	return GardenResponse{ID: g.ID, Name: g.Name, Type: g.Type, Location: g.Location, Zone: g.Zone}
}

func NewGardenWithBedsResponse(g *entity.Garden) GardenWithBedsResponse {
	beds := make([]BedResponse, 0, len(g.Beds))
	for i := range g.Beds {
		beds = append(beds, NewBedResponse(&g.Beds[i]))
	}
	return GardenWithBedsResponse{GardenResponse: NewGardenResponse(g), Beds: beds}
}

func NewGardenListResponse(gs []entity.Garden) []GardenResponse {
	out := make([]GardenResponse, 0, len(gs))
	for i := range gs {
		out = append(out, NewGardenResponse(&gs[i]))
	}
	return out
}
