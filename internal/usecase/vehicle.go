package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// VehicleUseCase manages client vehicles.
type VehicleUseCase struct {
	vehicles repository.VehicleRepository
}

// NewVehicleUseCase constructs VehicleUseCase.
func NewVehicleUseCase(vehicles repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles}
}

// Create registers a vehicle for a client. VINs are stored uppercased.
func (u *VehicleUseCase) Create(ctx context.Context, vehicle *model.Vehicle) error {
	vehicle.VIN = strings.ToUpper(strings.TrimSpace(vehicle.VIN))
	switch {
	case vehicle.ClientID <= 0:
		return fmt.Errorf("%w: client id is required", domainErrors.ErrValidation)
	case vehicle.VIN == "":
		return fmt.Errorf("%w: vin is required", domainErrors.ErrValidation)
	case vehicle.InitialMileage < 0:
		return fmt.Errorf("%w: mileage must not be negative", domainErrors.ErrValidation)
	}
	vehicle.Active = true
	return u.vehicles.Create(ctx, vehicle)
}

// FindByVIN looks a vehicle up by VIN, case-insensitively.
func (u *VehicleUseCase) FindByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return nil, fmt.Errorf("%w: vin is required", domainErrors.ErrValidation)
	}
	return u.vehicles.GetByVIN(ctx, vin)
}
