package test

import (
	"context"
	"time"

	"github.com/carsline/api/internal/domain/model"
	pkgAuth "github.com/carsline/api/internal/pkg/auth"
	"github.com/carsline/api/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn      func(context.Context, string, string) (*model.User, string, error)
	ParseFn      func(string) (*pkgAuth.Claims, error)
	CreateUserFn func(context.Context, int64, usecase.CreateUserInput) (*model.User, error)
	UsersFn      func(context.Context, int64) ([]model.User, error)
	RolesFn      func(context.Context) ([]model.Role, error)
}

// Login returns user and token for successful sign-in scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, RoleName: model.RoleAdmin, Active: true}, "token", nil
}

// ParseToken returns stored identity for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: 1, Role: model.RoleAdmin}, nil
}

// CreateUser registers a user through the configured override.
func (s AuthFacadeStub) CreateUser(ctx context.Context, adminID int64, in usecase.CreateUserInput) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, adminID, in)
	}
	return &model.User{ID: 2, Username: in.Username, FullName: in.FullName, RoleID: in.RoleID, Active: true}, nil
}

// Users returns the configured user list.
func (s AuthFacadeStub) Users(ctx context.Context, adminID int64) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, adminID)
	}
	return []model.User{{ID: 1, Username: "admin"}}, nil
}

// Roles returns the configured role list.
func (s AuthFacadeStub) Roles(ctx context.Context) ([]model.Role, error) {
	if s.RolesFn != nil {
		return s.RolesFn(ctx)
	}
	return []model.Role{{ID: 1, Name: model.RoleAdmin}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn  func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	CancelFn  func(context.Context, int64) error
	DeliverFn func(context.Context, int64) (*model.Order, error)
	ListFn    func(context.Context, int64, model.OrderType) ([]model.Order, error)
	HistoryFn func(context.Context, int64) (*usecase.VehicleHistory, error)
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Order{
		ID:        1,
		Number:    model.FormatOrderNumber(in.Type.Prefix(), 1),
		Type:      in.Type,
		ClientID:  in.ClientID,
		VehicleID: in.VehicleID,
		AdvisorID: in.AdvisorID,
		Status:    model.OrderStatusCreated,
		Active:    true,
	}, nil
}

// CancelOrder executes configured cancel handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	return nil
}

// DeliverOrder executes configured deliver handler.
func (s OrderFacadeStub) DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, orderID)
	}
	now := time.Unix(0, 0)
	return &model.Order{ID: orderID, Status: model.OrderStatusDelivered, DeliveredAt: &now}, nil
}

// AdvisorOrders returns configured orders for the advisor.
func (s OrderFacadeStub) AdvisorOrders(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, advisorID, orderType)
	}
	return []model.Order{{ID: 1, AdvisorID: advisorID, Type: orderType}}, nil
}

// VehicleHistory returns configured history for the vehicle.
func (s OrderFacadeStub) VehicleHistory(ctx context.Context, vehicleID int64) (*usecase.VehicleHistory, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, vehicleID)
	}
	return &usecase.VehicleHistory{}, nil
}

// ClientFacadeStub simulates client registry endpoints.
type ClientFacadeStub struct {
	CreateFn  func(context.Context, *model.Client) error
	UpdateFn  func(context.Context, *model.Client) error
	ByPhoneFn func(context.Context, string) ([]model.Client, error)
}

// CreateClient executes configured create handler.
func (s ClientFacadeStub) CreateClient(ctx context.Context, client *model.Client) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, client)
	}
	client.ID = 1
	return nil
}

// UpdateClient executes configured update handler.
func (s ClientFacadeStub) UpdateClient(ctx context.Context, client *model.Client) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, client)
	}
	return nil
}

// ClientsByPhone returns configured matches.
func (s ClientFacadeStub) ClientsByPhone(ctx context.Context, phone string) ([]model.Client, error) {
	if s.ByPhoneFn != nil {
		return s.ByPhoneFn(ctx, phone)
	}
	return []model.Client{{ID: 1, MobilePhone: phone}}, nil
}

// VehicleFacadeStub simulates vehicle registry endpoints.
type VehicleFacadeStub struct {
	CreateFn func(context.Context, *model.Vehicle) error
	ByVINFn  func(context.Context, string) (*model.Vehicle, error)
}

// CreateVehicle executes configured create handler.
func (s VehicleFacadeStub) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, vehicle)
	}
	vehicle.ID = 1
	return nil
}

// VehicleByVIN returns a configured vehicle.
func (s VehicleFacadeStub) VehicleByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	if s.ByVINFn != nil {
		return s.ByVINFn(ctx, vin)
	}
	return &model.Vehicle{ID: 1, VIN: vin}, nil
}

// CatalogFacadeStub serves catalog endpoints from configured slices.
type CatalogFacadeStub struct {
	ServiceTypesFn  func(context.Context) ([]model.ServiceType, error)
	ExtraServicesFn func(context.Context) ([]model.ExtraService, error)
}

// ServiceTypes returns configured service types.
func (s CatalogFacadeStub) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	if s.ServiceTypesFn != nil {
		return s.ServiceTypesFn(ctx)
	}
	return []model.ServiceType{{ID: 1, Name: "Basic service", BasePrice: 500, Active: true}}, nil
}

// ExtraServices returns configured extras.
func (s CatalogFacadeStub) ExtraServices(ctx context.Context) ([]model.ExtraService, error) {
	if s.ExtraServicesFn != nil {
		return s.ExtraServicesFn(ctx)
	}
	return []model.ExtraService{{ID: 1, Name: "Wash", Price: 100, Active: true}}, nil
}

// PartFacadeStub simulates spare parts endpoints.
type PartFacadeStub struct {
	ListFn     func(context.Context) ([]model.Part, error)
	ByNumberFn func(context.Context, string) (*model.Part, error)
	CreateFn   func(context.Context, *model.Part) error
	IncreaseFn func(context.Context, int64, int) (int, error)
	DecreaseFn func(context.Context, int64, int) (int, error)
	DeleteFn   func(context.Context, int64) error
}

// Parts returns configured inventory.
func (s PartFacadeStub) Parts(ctx context.Context) ([]model.Part, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Part{{ID: 1, PartNumber: "F-100", Quantity: 3, Active: true}}, nil
}

// PartByNumber returns a configured part.
func (s PartFacadeStub) PartByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	if s.ByNumberFn != nil {
		return s.ByNumberFn(ctx, partNumber)
	}
	return &model.Part{ID: 1, PartNumber: partNumber, Quantity: 3, Active: true}, nil
}

// CreatePart executes configured create handler.
func (s PartFacadeStub) CreatePart(ctx context.Context, part *model.Part) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, part)
	}
	part.ID = 1
	return nil
}

// IncreasePart executes configured increase handler.
func (s PartFacadeStub) IncreasePart(ctx context.Context, id int64, qty int) (int, error) {
	if s.IncreaseFn != nil {
		return s.IncreaseFn(ctx, id, qty)
	}
	return qty, nil
}

// DecreasePart executes configured decrease handler.
func (s PartFacadeStub) DecreasePart(ctx context.Context, id int64, qty int) (int, error) {
	if s.DecreaseFn != nil {
		return s.DecreaseFn(ctx, id, qty)
	}
	return 0, nil
}

// DeletePart executes configured delete handler.
func (s PartFacadeStub) DeletePart(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// WorkshopFacadeStub aggregates facade dependencies for HTTP layer tests.
type WorkshopFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ClientFacadeStub
	VehicleFacadeStub
	CatalogFacadeStub
	PartFacadeStub
}

// PingerStub reports configurable store health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
