package model

import "time"

// Part is a spare part tracked by the workshop inventory.
type Part struct {
	ID           int64
	PartNumber   string
	PartType     string
	VehicleMake  *string
	VehicleModel *string
	Year         *int
	Quantity     int
	RegisteredAt time.Time
	UpdatedAt    time.Time
	Active       bool
}
