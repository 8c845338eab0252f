package dto

import (
	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/shared/optional"
)

// CreatePlantRequest is the body of POST /api/plants/. A missing variety is stored as "".
type CreatePlantRequest struct {
	NameCommon      string  `json:"name_common" form:"name_common" binding:"required"`
	Variety         *string `json:"variety" form:"variety"`
	NameBotanical   *string `json:"name_botanical" form:"name_botanical"`
	FamilyGroup     *string `json:"family_group" form:"family_group"`
	Harvest         *string `json:"harvest" form:"harvest"`
	Hints           *string `json:"hints" form:"hints"`
	WatchFor        *string `json:"watch_for" form:"watch_for"`
	ProvenVarieties *string `json:"proven_varieties" form:"proven_varieties"`
}

func (r CreatePlantRequest) ToEntity() *entity.Plant {
	p := &entity.Plant{
		NameCommon:      r.NameCommon,
		NameBotanical:   r.NameBotanical,
		FamilyGroup:     r.FamilyGroup,
		Harvest:         r.Harvest,
		Hints:           r.Hints,
		WatchFor:        r.WatchFor,
		ProvenVarieties: r.ProvenVarieties,
	}
	if r.Variety != nil {
		p.Variety = *r.Variety
	}
	return p
}

// UpdatePlantRequest is the body of PATCH /api/plants/{id}.
type UpdatePlantRequest struct {
	NameCommon      optional.Value[string] `json:"name_common"`
	Variety         optional.Value[string] `json:"variety"`
	NameBotanical   optional.Value[string] `json:"name_botanical"`
	FamilyGroup     optional.Value[string] `json:"family_group"`
	Harvest         optional.Value[string] `json:"harvest"`
	Hints           optional.Value[string] `json:"hints"`
	WatchFor        optional.Value[string] `json:"watch_for"`
	ProvenVarieties optional.Value[string] `json:"proven_varieties"`
}

func (r UpdatePlantRequest) ToPatch() entity.PlantPatch {
	return entity.PlantPatch{
		NameCommon:      r.NameCommon,
		Variety:         r.Variety,
		NameBotanical:   r.NameBotanical,
		FamilyGroup:     r.FamilyGroup,
		Harvest:         r.Harvest,
		Hints:           r.Hints,
		WatchFor:        r.WatchFor,
		ProvenVarieties: r.ProvenVarieties,
	}
}

// PlantResponse reports an empty variety as null.
type PlantResponse struct {
	ID              uint    `json:"id"`
	NameCommon      string  `json:"name_common"`
	Variety         *string `json:"variety"`
	NameBotanical   *string `json:"name_botanical"`
	FamilyGroup     *string `json:"family_group"`
	Harvest         *string `json:"harvest"`
	Hints           *string `json:"hints"`
	WatchFor        *string `json:"watch_for"`
	ProvenVarieties *string `json:"proven_varieties"`
}

func NewPlantResponse(p *entity.Plant) PlantResponse {
	out := PlantResponse{
		ID:              p.ID,
		NameCommon:      p.NameCommon,
		NameBotanical:   p.NameBotanical,
		FamilyGroup:     p.FamilyGroup,
		Harvest:         p.Harvest,
		Hints:           p.Hints,
		WatchFor:        p.WatchFor,
		ProvenVarieties: p.ProvenVarieties,
	}
	if p.Variety != "" {
		v := p.Variety
		out.Variety = &v
	}
	return out
}

func NewPlantListResponse(ps []entity.Plant) []PlantResponse {
	out := make([]PlantResponse, 0, len(ps))
	for i := range ps {
		out = append(out, NewPlantResponse(&ps[i]))
	}
	return out
}
