package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/server/http/dto"
)

// PartHandler manages the spare parts inventory endpoints.
type PartHandler struct {
	facade PartFacade
}

// NewPartHandler constructs PartHandler.
func NewPartHandler(facade PartFacade) *PartHandler {
	return &PartHandler{facade: facade}
}

// List handles GET /api/parts.
func (h *PartHandler) List(c *gin.Context) {
	parts, err := h.facade.Parts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		response = append(response, toPartResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// FindByNumber handles GET /api/parts/by-number/:partNumber.
func (h *PartHandler) FindByNumber(c *gin.Context) {
	part, err := h.facade.PartByNumber(c.Request.Context(), c.Param("partNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPartResponse(*part))
}

// Create handles POST /api/parts.
func (h *PartHandler) Create(c *gin.Context) {
	var req dto.PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part payload"})
		return
	}

	part := &model.Part{
		PartNumber:   req.PartNumber,
		PartType:     req.PartType,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		Year:         req.Year,
		Quantity:     req.Quantity,
	}
	if err := h.facade.CreatePart(c.Request.Context(), part); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPartResponse(*part))
}

// Increase handles PUT /api/parts/:id/increase/:qty.
func (h *PartHandler) Increase(c *gin.Context) {
	h.adjust(c, +1)
}

// Decrease handles PUT /api/parts/:id/decrease/:qty.
func (h *PartHandler) Decrease(c *gin.Context) {
	h.adjust(c, -1)
}

func (h *PartHandler) adjust(c *gin.Context, sign int) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part id"})
		return
	}
	qty, err := strconv.Atoi(c.Param("qty"))
	if err != nil || qty <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}

	var quantity int
	if sign > 0 {
		quantity, err = h.facade.IncreasePart(c.Request.Context(), id, qty)
	} else {
		quantity, err = h.facade.DecreasePart(c.Request.Context(), id, qty)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuantityResponse{ID: id, Quantity: quantity})
}

// Delete handles DELETE /api/parts/:id.
func (h *PartHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part id"})
		return
	}

	if err := h.facade.DeletePart(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toPartResponse(p model.Part) dto.PartResponse {
	return dto.PartResponse{
		ID:           p.ID,
		PartNumber:   p.PartNumber,
		PartType:     p.PartType,
		VehicleMake:  p.VehicleMake,
		VehicleModel: p.VehicleModel,
		Year:         p.Year,
		Quantity:     p.Quantity,
		RegisteredAt: p.RegisteredAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
