package handlers

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
	pkgAuth "github.com/carsline/api/internal/pkg/auth"
	"github.com/carsline/api/internal/usecase"
)

// AuthFacade describes authentication and user administration.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	CreateUser(ctx context.Context, adminID int64, in usecase.CreateUserInput) (*model.User, error)
	Users(ctx context.Context, adminID int64) ([]model.User, error)
	Roles(ctx context.Context) ([]model.Role, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
	DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error)
	AdvisorOrders(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error)
	VehicleHistory(ctx context.Context, vehicleID int64) (*usecase.VehicleHistory, error)
}

// ClientFacade provides client registry operations.
type ClientFacade interface {
	CreateClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, client *model.Client) error
	ClientsByPhone(ctx context.Context, phone string) ([]model.Client, error)
}

// VehicleFacade provides vehicle registry operations.
type VehicleFacade interface {
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error
	VehicleByVIN(ctx context.Context, vin string) (*model.Vehicle, error)
}

// CatalogFacade exposes the read-only service catalog.
type CatalogFacade interface {
	ServiceTypes(ctx context.Context) ([]model.ServiceType, error)
	ExtraServices(ctx context.Context) ([]model.ExtraService, error)
}

// PartFacade provides spare parts inventory operations.
type PartFacade interface {
	Parts(ctx context.Context) ([]model.Part, error)
	PartByNumber(ctx context.Context, partNumber string) (*model.Part, error)
	CreatePart(ctx context.Context, part *model.Part) error
	IncreasePart(ctx context.Context, id int64, qty int) (int, error)
	DecreasePart(ctx context.Context, id int64, qty int) (int, error)
	DeletePart(ctx context.Context, id int64) error
}

// WorkshopFacade aggregates the full set of operations used across handlers.
type WorkshopFacade interface {
	AuthFacade
	OrderFacade
	ClientFacade
	VehicleFacade
	CatalogFacade
	PartFacade
}

// Pinger verifies that the backing store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
