package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/server/http/dto"
	"github.com/carsline/api/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders. The advisor is the authenticated caller.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		Type:            model.OrderType(req.OrderType),
		ClientID:        req.ClientID,
		VehicleID:       req.VehicleID,
		AdvisorID:       CurrentUserID(c),
		ServiceTypeID:   req.ServiceTypeID,
		Mileage:         req.Mileage,
		PromisedAt:      req.PromisedAt,
		Notes:           req.Notes,
		ExtraServiceIDs: req.ExtraServiceIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		TotalCost:   order.TotalCost,
	})
}

// ListByType handles GET /api/orders/advisor/:orderType.
func (h *OrderHandler) ListByType(c *gin.Context) {
	orderType, err := strconv.Atoi(c.Param("orderType"))
	if err != nil || orderType <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order type"})
		return
	}

	orders, err := h.facade.AdvisorOrders(c.Request.Context(), CurrentUserID(c), model.OrderType(orderType))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.OrderResponse{
			ID:            o.ID,
			OrderNumber:   o.Number,
			Status:        o.Status.String(),
			ClientID:      o.ClientID,
			VehicleID:     o.VehicleID,
			ServiceTypeID: o.ServiceTypeID,
			PromisedAt:    o.PromisedAt,
			StartedAt:     o.StartedAt,
			FinishedAt:    o.FinishedAt,
			TotalCost:     o.TotalCost,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
}

// Deliver handles PUT /api/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.facade.DeliverOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order delivered", "delivered_at": order.DeliveredAt})
}

// VehicleHistory handles GET /api/orders/vehicle-history/:vehicleId.
func (h *OrderHandler) VehicleHistory(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	history, err := h.facade.VehicleHistory(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]dto.HistoryEntryResponse, 0, len(history.Orders))
	for _, o := range history.Orders {
		extras := make([]dto.LineItemResponse, 0, len(o.Extras))
		for _, item := range o.Extras {
			extras = append(extras, dto.LineItemResponse{
				ExtraServiceID: item.ExtraServiceID,
				PriceApplied:   item.PriceApplied,
			})
		}
		entries = append(entries, dto.HistoryEntryResponse{
			OrderNumber: o.Number,
			ServiceDate: o.CreatedAt,
			Mileage:     o.Mileage,
			TotalCost:   o.TotalCost,
			Notes:       o.Notes,
			Extras:      extras,
		})
	}

	c.JSON(http.StatusOK, dto.VehicleHistoryResponse{
		Total:       history.Total,
		AverageCost: history.AverageCost,
		LastMileage: history.LastMileage,
		LastDate:    history.LastDate,
		History:     entries,
	})
}
