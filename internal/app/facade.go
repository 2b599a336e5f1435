package app

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
	pkgAuth "github.com/carsline/api/internal/pkg/auth"
	"github.com/carsline/api/internal/usecase"
)

// WorkshopFacade aggregates the business use cases behind one surface for the
// HTTP layer.
type WorkshopFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	clients  *usecase.ClientUseCase
	vehicles *usecase.VehicleUseCase
	catalog  *usecase.CatalogUseCase
	parts    *usecase.PartUseCase
}

// NewWorkshopFacade constructs WorkshopFacade.
func NewWorkshopFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	clients *usecase.ClientUseCase,
	vehicles *usecase.VehicleUseCase,
	catalog *usecase.CatalogUseCase,
	parts *usecase.PartUseCase,
) *WorkshopFacade {
	return &WorkshopFacade{
		auth:     auth,
		orders:   orders,
		clients:  clients,
		vehicles: vehicles,
		catalog:  catalog,
		parts:    parts,
	}
}

func (f *WorkshopFacade) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *WorkshopFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *WorkshopFacade) CreateUser(ctx context.Context, adminID int64, in usecase.CreateUserInput) (*model.User, error) {
	return f.auth.CreateUser(ctx, adminID, in)
}

func (f *WorkshopFacade) Users(ctx context.Context, adminID int64) ([]model.User, error) {
	return f.auth.Users(ctx, adminID)
}

func (f *WorkshopFacade) Roles(ctx context.Context) ([]model.Role, error) {
	return f.auth.Roles(ctx)
}

func (f *WorkshopFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *WorkshopFacade) CancelOrder(ctx context.Context, orderID int64) error {
	return f.orders.Cancel(ctx, orderID)
}

func (f *WorkshopFacade) DeliverOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Deliver(ctx, orderID)
}

func (f *WorkshopFacade) AdvisorOrders(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error) {
	return f.orders.ListByAdvisor(ctx, advisorID, orderType)
}

func (f *WorkshopFacade) VehicleHistory(ctx context.Context, vehicleID int64) (*usecase.VehicleHistory, error) {
	return f.orders.HistoryByVehicle(ctx, vehicleID)
}

func (f *WorkshopFacade) CreateClient(ctx context.Context, client *model.Client) error {
	return f.clients.Create(ctx, client)
}

func (f *WorkshopFacade) UpdateClient(ctx context.Context, client *model.Client) error {
	return f.clients.Update(ctx, client)
}

func (f *WorkshopFacade) ClientsByPhone(ctx context.Context, phone string) ([]model.Client, error) {
	return f.clients.FindByPhone(ctx, phone)
}

func (f *WorkshopFacade) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	return f.vehicles.Create(ctx, vehicle)
}

func (f *WorkshopFacade) VehicleByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	return f.vehicles.FindByVIN(ctx, vin)
}

func (f *WorkshopFacade) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	return f.catalog.ServiceTypes(ctx)
}

func (f *WorkshopFacade) ExtraServices(ctx context.Context) ([]model.ExtraService, error) {
	return f.catalog.ExtraServices(ctx)
}

func (f *WorkshopFacade) Parts(ctx context.Context) ([]model.Part, error) {
	return f.parts.List(ctx)
}

func (f *WorkshopFacade) PartByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	return f.parts.FindByNumber(ctx, partNumber)
}

func (f *WorkshopFacade) CreatePart(ctx context.Context, part *model.Part) error {
	return f.parts.Create(ctx, part)
}

func (f *WorkshopFacade) IncreasePart(ctx context.Context, id int64, qty int) (int, error) {
	return f.parts.Increase(ctx, id, qty)
}

func (f *WorkshopFacade) DecreasePart(ctx context.Context, id int64, qty int) (int, error) {
	return f.parts.Decrease(ctx, id, qty)
}

func (f *WorkshopFacade) DeletePart(ctx context.Context, id int64) error {
	return f.parts.Delete(ctx, id)
}
