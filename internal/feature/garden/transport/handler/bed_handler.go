package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/feature/garden/domain/entity"
	"garden_backend/internal/feature/garden/transport/http/dto"
)

// BedUsecase is the bed CRUD surface plus the enum lookups.
type BedUsecase interface {
	Create(ctx context.Context, b *entity.Bed) (*entity.Bed, error)
	List(ctx context.Context, offset, limit int) ([]entity.Bed, error)
	Get(ctx context.Context, id uint) (*entity.Bed, error)
	Update(ctx context.Context, id uint, patch entity.BedPatch) (*entity.Bed, error)
	Delete(ctx context.Context, id uint) error
	SoilTypes() []entity.SoilType
	IrrigationZones() []entity.IrrigationZone
}

// BedHandler serves /api/beds.
type BedHandler struct {
	uc BedUsecase
}

// NewBedHandler creates a BedHandler.
func NewBedHandler(uc BedUsecase) *BedHandler {
	return &BedHandler{uc: uc}
}

func (h *BedHandler) Create(c *gin.Context) {
	var req dto.CreateBedRequest
	if err := bindCreate(c, &req); err != nil {
		respondError(c, "create bed validation failed", err)
		return
	}
	b, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, "create bed failed", err)
		return
	}
	slog.Info("bed created", "bed_id", b.ID, "name", b.Name)
	c.Header(headerHXTrigger, "bedsChanged")
	c.JSON(http.StatusCreated, dto.NewBedResponse(b))
}

func (h *BedHandler) List(c *gin.Context) {
	q, err := bindList(c)
	if err != nil {
		respondError(c, "list beds validation failed", err)
		return
	}
	bs, err := h.uc.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		respondError(c, "list beds failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBedListResponse(bs))
}

// Get returns the bed together with its garden, if any.
func (h *BedHandler) Get(c *gin.Context) {
	id, err := parseID(c, "Bed")
	if err != nil {
		respondError(c, "get bed failed", err)
		return
	}
	b, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get bed failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBedWithGardenResponse(b))
}

func (h *BedHandler) Update(c *gin.Context) {
	id, err := parseID(c, "Bed")
	if err != nil {
		respondError(c, "update bed failed", err)
		return
	}
	var req dto.UpdateBedRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, "update bed validation failed", err)
		return
	}
	b, err := h.uc.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, "update bed failed", err)
		return
	}
	slog.Info("bed updated", "bed_id", b.ID)
	c.Header(headerHXTrigger, "bedsChanged")
	c.JSON(http.StatusOK, dto.NewBedResponse(b))
}

func (h *BedHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "Bed")
	if err != nil {
		respondError(c, "delete bed failed", err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete bed failed", err)
		return
	}
	slog.Info("bed deleted", "bed_id", id)
	respondDeleted(c, "bedsChanged")
}

// SoilTypes handles GET /api/beds/soil_types/.
func (h *BedHandler) SoilTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.SoilTypes())
}

// IrrigationZones handles GET /api/beds/irrigation_zones/.
func (h *BedHandler) IrrigationZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.IrrigationZones())
}
