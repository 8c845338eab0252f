package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/transport/http/dto"
)

type PlantingUsecase interface {
	Create(ctx context.Context, p *entity.Planting, plantIDs []uint) (*entity.Planting, error)
	List(ctx context.Context, offset, limit int) ([]entity.Planting, error)
	Get(ctx context.Context, id uint) (*entity.Planting, error)
	Update(ctx context.Context, id uint, patch entity.PlantingPatch) (*entity.Planting, error)
	Delete(ctx context.Context, id uint) error
}

// PlantingHandler serves /api/plantings.
type PlantingHandler struct {
	uc PlantingUsecase
}

func NewPlantingHandler(uc PlantingUsecase) *PlantingHandler {
	return &PlantingHandler{uc: uc}
}

func (h *PlantingHandler) Create(c *gin.Context) {
	var req dto.CreatePlantingRequest
	if err := bindCreate(c, &req); err != nil {
		respondError(c, "create planting validation failed", err)
		return
	}
	p, err := h.uc.Create(c.Request.Context(), req.ToEntity(), req.PlantIDs)
	if err != nil {
		respondError(c, "create planting failed", err)
		return
	}
	slog.Info("planting created", "planting_id", p.ID, "name", p.Name)
	c.Header(headerHXTrigger, "plantingsChanged")
	c.JSON(http.StatusCreated, dto.NewPlantingResponse(p))
}

func (h *PlantingHandler) List(c *gin.Context) {
	q, err := bindList(c)
	if err != nil {
		respondError(c, "list plantings validation failed", err)
		return
	}
	ps, err := h.uc.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		respondError(c, "list plantings failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantingListResponse(ps))
}

func (h *PlantingHandler) Get(c *gin.Context) {
	id, err := parseID(c, "Planting")
	if err != nil {
		respondError(c, "get planting failed", err)
		return
	}
	p, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get planting failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantingWithBedResponse(p))
}

func (h *PlantingHandler) Update(c *gin.Context) {
	id, err := parseID(c, "Planting")
	if err != nil {
		respondError(c, "update planting failed", err)
		return
	}
	var req dto.UpdatePlantingRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, "update planting validation failed", err)
		return
	}
	p, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, "update planting failed", err)
		return
	}
	slog.Info("planting updated", "planting_id", p.ID)
	c.Header(headerHXTrigger, "plantingsChanged")
	c.JSON(http.StatusOK, dto.NewPlantingResponse(p))
}

func (h *PlantingHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "Planting")
	if err != nil {
		respondError(c, "delete planting failed", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete planting failed", err)
		return
	}
	slog.Info("planting deleted", "planting_id", id)
	respondDeleted(c, "plantingsChanged")
}
