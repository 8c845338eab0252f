package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/transport/http/dto"
)

type PlantUsecase interface {
	Create(ctx context.Context, p *entity.Plant) (*entity.Plant, error)
	List(ctx context.Context, offset, limit int) ([]entity.Plant, error)
	Get(ctx context.Context, id uint) (*entity.Plant, error)
	Update(ctx context.Context, id uint, patch entity.PlantPatch) (*entity.Plant, error)
	Delete(ctx context.Context, id uint) error
}

// PlantHandler serves the plant catalog under /api/plants.
type PlantHandler struct {
	uc PlantUsecase
}

func NewPlantHandler(uc PlantUsecase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

func (h *PlantHandler) Create(c *gin.Context) {
	var req dto.CreatePlantRequest
	if err := bindCreate(c, &req); err != nil {
		respondError(c, "create plant validation failed", err)
		return
	}
	p, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "create plant failed", err)
		return
	}
	slog.Info("plant created", "plant_id", p.ID, "name", p.DisplayName())
	c.Header(headerHXTrigger, "plantsChanged")
	c.JSON(http.StatusCreated, dto.NewPlantResponse(p))
}

func (h *PlantHandler) List(c *gin.Context) {
	q, err := bindList(c)
	if err != nil {
		respondError(c, "list plants validation failed", err)
		return
	}
	ps, err := h.uc.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		respondError(c, "list plants failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantListResponse(ps))
}

func (h *PlantHandler) Get(c *gin.Context) {
	id, err := parseID(c, "Plant")
	if err != nil {
		respondError(c, "get plant failed", err)
		return
	}
	p, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get plant failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlantResponse(p))
}

func (h *PlantHandler) Update(c *gin.Context) {
	id, err := parseID(c, "Plant")
	if err != nil {
		respondError(c, "update plant failed", err)
		return
	}
	var req dto.UpdatePlantRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, "update plant validation failed", err)
		return
	}
	p, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, "update plant failed", err)
		return
	}
	slog.Info("plant updated", "plant_id", p.ID)
	c.Header(headerHXTrigger, "plantsChanged")
	c.JSON(http.StatusOK, dto.NewPlantResponse(p))
}

func (h *PlantHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "Plant")
	if err != nil {
		respondError(c, "delete plant failed", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete plant failed", err)
		return
	}
	slog.Info("plant deleted", "plant_id", id)
	respondDeleted(c, "plantsChanged")
}
