package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/transport/http/dto"
)

// GardenUsecase is the garden CRUD surface the handler needs.
// Interfaces are declared by the consumer (handler), not by the usecase package.
type GardenUsecase interface {
	Create(ctx context.Context, g *entity.Garden) (*entity.Garden, error)
	List(ctx context.Context, offset, limit int) ([]entity.Garden, error)
	Get(ctx context.Context, id uint) (*entity.Garden, error)
	Update(ctx context.Context, id uint, patch entity.GardenPatch) (*entity.Garden, error)
	Delete(ctx context.Context, id uint) error
}

// GardenHandler serves /api/gardens.
type GardenHandler struct {
	uc GardenUsecase
}

// NewGardenHandler creates a GardenHandler.
func NewGardenHandler(uc GardenUsecase) *GardenHandler {
	return &GardenHandler{uc: uc}
}

// Create handles POST /api/gardens/.
func (h *GardenHandler) Create(c *gin.Context) {
	var req dto.CreateGardenRequest
	if err := bindCreate(c, &req); err != nil {
		respondError(c, "create garden validation failed", err)
		return
	}
	g, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "create garden failed", err)
		return
	}
	slog.Info("garden created", "garden_id", g.ID, "name", g.Name)
	c.Header(headerHXTrigger, "gardensChanged")
	c.JSON(http.StatusCreated, dto.NewGardenResponse(g))
}

// List handles GET /api/gardens/?offset=&limit=.
func (h *GardenHandler) List(c *gin.Context) {
	q, err := bindList(c)
	if err != nil {
		respondError(c, "list gardens validation failed", err)
		return
	}
	gs, err := h.uc.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		respondError(c, "list gardens failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGardenListResponse(gs))
}

// Get handles GET /api/gardens/{id}. The garden's beds are included.
func (h *GardenHandler) Get(c *gin.Context) {
	id, err := parseID(c, "Garden")
	if err != nil {
		respondError(c, "get garden failed", err)
		return
	}
	g, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get garden failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGardenWithBedsResponse(g))
}

// Update handles PATCH /api/gardens/{id}.
func (h *GardenHandler) Update(c *gin.Context) {
	id, err := parseID(c, "Garden")
	if err != nil {
		respondError(c, "update garden failed", err)
		return
	}
	var req dto.UpdateGardenRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, "update garden validation failed", err)
		return
	}
	g, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, "update garden failed", err)
		return
	}
	slog.Info("garden updated", "garden_id", g.ID)
	c.Header(headerHXTrigger, "gardensChanged")
	c.JSON(http.StatusOK, dto.NewGardenResponse(g))
}

// Delete handles DELETE /api/gardens/{id}. Beds of the garden are kept and detached.
func (h *GardenHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "Garden")
	if err != nil {
		respondError(c, "delete garden failed", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete garden failed", err)
		return
	}
	slog.Info("garden deleted", "garden_id", id)
	respondDeleted(c, "gardensChanged")
}

// Types handles GET /api/gardens/types/.
func (h *GardenHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, entity.GardenTypeValues())
}

// Zones handles GET /api/gardens/zones/.
func (h *GardenHandler) Zones(c *gin.Context) {
	c.JSON(http.StatusOK, entity.ClimaticZoneValues())
}
