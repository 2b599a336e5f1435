package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// historyWindow limits how far back the vehicle history report reaches.
const historyWindow = 6 // months

// OrderUseCase owns the order lifecycle: creation with number assignment and
// cost snapshot, cancellation, and delivery with its history side effect.
type OrderUseCase struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
	planner model.MaintenancePlanner
	retries int
}

// NewOrderUseCase constructs OrderUseCase. retries bounds how many times a
// creation is re-run after losing the race on the order number unique index.
func NewOrderUseCase(orders repository.OrderRepository, catalog repository.CatalogRepository, planner model.MaintenancePlanner, retries int) *OrderUseCase {
	if retries <= 0 {
		retries = 5
	}
	return &OrderUseCase{orders: orders, catalog: catalog, planner: planner, retries: retries}
}

// CreateOrderInput carries everything needed to open an order.
type CreateOrderInput struct {
	Type            model.OrderType
	ClientID        int64
	VehicleID       int64
	AdvisorID       int64
	ServiceTypeID   *int64
	Mileage         int
	PromisedAt      time.Time
	Notes           *string
	ExtraServiceIDs []int64
}

func (in CreateOrderInput) validate() error {
	switch {
	case in.Type <= 0:
		return fmt.Errorf("%w: order type is required", domainErrors.ErrValidation)
	case in.ClientID <= 0:
		return fmt.Errorf("%w: client id is required", domainErrors.ErrValidation)
	case in.VehicleID <= 0:
		return fmt.Errorf("%w: vehicle id is required", domainErrors.ErrValidation)
	case in.AdvisorID <= 0:
		return fmt.Errorf("%w: advisor id is required", domainErrors.ErrValidation)
	case in.Mileage < 0:
		return fmt.Errorf("%w: mileage must not be negative", domainErrors.ErrValidation)
	case in.PromisedAt.IsZero():
		return fmt.Errorf("%w: promised delivery time is required", domainErrors.ErrValidation)
	}
	return nil
}

// Create opens a new order: validates input, snapshots the cost per the
// current catalog, and persists order plus line items in one transaction.
// Lost races on the order number are retried a bounded number of times.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	total, items, err := u.Quote(ctx, in.ServiceTypeID, in.ExtraServiceIDs)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < u.retries; attempt++ {
		order := &model.Order{
			Type:          in.Type,
			ClientID:      in.ClientID,
			VehicleID:     in.VehicleID,
			AdvisorID:     in.AdvisorID,
			ServiceTypeID: in.ServiceTypeID,
			Mileage:       in.Mileage,
			Status:        model.OrderStatusCreated,
			PromisedAt:    in.PromisedAt,
			Notes:         in.Notes,
			TotalCost:     total,
			Active:        true,
			Extras:        items,
		}

		lastErr = u.orders.Create(ctx, order)
		if lastErr == nil {
			return order, nil
		}
		if !errors.Is(lastErr, domainErrors.ErrOrderNumberTaken) {
			return nil, lastErr
		}
	}

	return nil, fmt.Errorf("create order after %d attempts: %w", u.retries, lastErr)
}

// Quote computes the cost snapshot for an order: the base price of the
// optional service type plus the current price of every referenced extra
// service. Unknown ids contribute nothing and raise no error.
func (u *OrderUseCase) Quote(ctx context.Context, serviceTypeID *int64, extraIDs []int64) (float64, []model.OrderLineItem, error) {
	var total float64

	if serviceTypeID != nil {
		st, err := u.catalog.GetServiceType(ctx, *serviceTypeID)
		switch {
		case err == nil:
			total = st.BasePrice
		case errors.Is(err, domainErrors.ErrNotFound):
			// unknown service type prices as zero
		default:
			return 0, nil, err
		}
	}

	if len(extraIDs) == 0 {
		return total, nil, nil
	}

	extras, err := u.catalog.ExtraServicesByIDs(ctx, extraIDs)
	if err != nil {
		return 0, nil, err
	}

	items := make([]model.OrderLineItem, 0, len(extras))
	for _, extra := range extras {
		total += extra.Price
		items = append(items, model.OrderLineItem{ExtraServiceID: extra.ID, PriceApplied: extra.Price})
	}

	return total, items, nil
}

// Cancel moves an order to cancelled and marks it inactive. Repeated calls
// re-apply the same state without error; delivered orders are rejected.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID int64) error {
	return u.orders.Cancel(ctx, orderID)
}

// Deliver closes an order as delivered and, when it carries a service type,
// records its service history with the projected next visit. Both writes land
// in the same transaction.
func (u *OrderUseCase) Deliver(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.Deliver(ctx, orderID, time.Now(), u.planner)
}

// ListByAdvisor returns the advisor's open orders of the given type, soonest
// promise first.
func (u *OrderUseCase) ListByAdvisor(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error) {
	return u.orders.ListOpenByAdvisor(ctx, advisorID, orderType)
}

// VehicleHistory summarizes the vehicle's delivered services over the recent
// reporting window.
type VehicleHistory struct {
	Orders      []model.Order
	Total       int
	AverageCost float64
	LastMileage int
	LastDate    *time.Time
}

// HistoryByVehicle reports delivered orders for the vehicle within the last
// six months, newest first, with aggregate statistics.
func (u *OrderUseCase) HistoryByVehicle(ctx context.Context, vehicleID int64) (*VehicleHistory, error) {
	since := time.Now().AddDate(0, -historyWindow, 0)
	orders, err := u.orders.DeliveredByVehicle(ctx, vehicleID, since)
	if err != nil {
		return nil, err
	}

	history := &VehicleHistory{Orders: orders, Total: len(orders)}
	if len(orders) == 0 {
		return history, nil
	}

	var sum float64
	for _, o := range orders {
		sum += o.TotalCost
	}
	history.AverageCost = sum / float64(len(orders))

	last := orders[0]
	history.LastMileage = last.Mileage
	created := last.CreatedAt
	history.LastDate = &created

	return history, nil
}
