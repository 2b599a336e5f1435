package repository

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
)

// VehicleRepository describes persistence operations for vehicles.
type VehicleRepository interface {
	// Create inserts the vehicle; a duplicate VIN returns ErrAlreadyExists.
	Create(ctx context.Context, vehicle *model.Vehicle) error
	GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
}
