package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/server/http/dto"
)

// VehicleHandler manages the vehicle registry endpoints.
type VehicleHandler struct {
	facade VehicleFacade
}

// NewVehicleHandler constructs VehicleHandler.
func NewVehicleHandler(facade VehicleFacade) *VehicleHandler {
	return &VehicleHandler{facade: facade}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle payload"})
		return
	}

	vehicle := &model.Vehicle{
		ClientID:       req.ClientID,
		VIN:            req.VIN,
		Make:           req.Make,
		Model:          req.Model,
		Trim:           req.Trim,
		Year:           req.Year,
		Color:          req.Color,
		Plates:         req.Plates,
		InitialMileage: req.InitialMileage,
	}
	if err := h.facade.CreateVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVehicleResponse(*vehicle))
}

// FindByVIN handles GET /api/vehicles/by-vin/:vin.
func (h *VehicleHandler) FindByVIN(c *gin.Context) {
	vehicle, err := h.facade.VehicleByVIN(c.Request.Context(), c.Param("vin"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func toVehicleResponse(v model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:             v.ID,
		ClientID:       v.ClientID,
		VIN:            v.VIN,
		Make:           v.Make,
		Model:          v.Model,
		Trim:           v.Trim,
		Year:           v.Year,
		Color:          v.Color,
		Plates:         v.Plates,
		InitialMileage: v.InitialMileage,
	}
}
