package dto

import "time"

// PartRequest registers a spare part.
type PartRequest struct {
	PartNumber   string  `json:"part_number" binding:"required"`
	PartType     string  `json:"part_type" binding:"required"`
	VehicleMake  *string `json:"vehicle_make,omitempty"`
	VehicleModel *string `json:"vehicle_model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Quantity     int     `json:"quantity"`
}

// PartResponse is the public view of an inventory part.
type PartResponse struct {
	ID           int64     `json:"id"`
	PartNumber   string    `json:"part_number"`
	PartType     string    `json:"part_type"`
	VehicleMake  *string   `json:"vehicle_make,omitempty"`
	VehicleModel *string   `json:"vehicle_model,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Quantity     int       `json:"quantity"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuantityResponse reports stock after an adjustment.
type QuantityResponse struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}
