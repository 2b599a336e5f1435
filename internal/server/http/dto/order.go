package dto

import "time"

// CreateOrderRequest opens a new service order.
type CreateOrderRequest struct {
	OrderType       int       `json:"order_type" binding:"required"`
	ClientID        int64     `json:"client_id" binding:"required"`
	VehicleID       int64     `json:"vehicle_id" binding:"required"`
	ServiceTypeID   *int64    `json:"service_type_id,omitempty"`
	Mileage         int       `json:"mileage"`
	PromisedAt      time.Time `json:"promised_at" binding:"required"`
	Notes           *string   `json:"notes,omitempty"`
	ExtraServiceIDs []int64   `json:"extra_service_ids,omitempty"`
}

// CreateOrderResponse reports the assigned number and cost snapshot.
type CreateOrderResponse struct {
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	TotalCost   float64 `json:"total_cost"`
}

// OrderResponse is one order in an advisor's queue.
type OrderResponse struct {
	ID            int64      `json:"id"`
	OrderNumber   string     `json:"order_number"`
	Status        string     `json:"status"`
	ClientID      int64      `json:"client_id"`
	VehicleID     int64      `json:"vehicle_id"`
	ServiceTypeID *int64     `json:"service_type_id,omitempty"`
	PromisedAt    time.Time  `json:"promised_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	TotalCost     float64    `json:"total_cost"`
}

// LineItemResponse is an applied extra service with its price snapshot.
type LineItemResponse struct {
	ExtraServiceID int64   `json:"extra_service_id"`
	PriceApplied   float64 `json:"price_applied"`
}

// HistoryEntryResponse is one delivered service in a vehicle's history.
type HistoryEntryResponse struct {
	OrderNumber string             `json:"order_number"`
	ServiceDate time.Time          `json:"service_date"`
	Mileage     int                `json:"mileage"`
	TotalCost   float64            `json:"total_cost"`
	Notes       *string            `json:"notes,omitempty"`
	Extras      []LineItemResponse `json:"extras"`
}

// VehicleHistoryResponse summarizes a vehicle's recent services.
type VehicleHistoryResponse struct {
	Total       int                    `json:"total"`
	AverageCost float64                `json:"average_cost"`
	LastMileage int                    `json:"last_mileage"`
	LastDate    *time.Time             `json:"last_date,omitempty"`
	History     []HistoryEntryResponse `json:"history"`
}
