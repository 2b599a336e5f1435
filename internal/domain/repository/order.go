package repository

import (
	"context"
	"time"

	"github.com/carsline/api/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// dependent rows. Create and Deliver are transactional: either every write in
// the operation lands or none does.
type OrderRepository interface {
	// Create assigns the next order number for the order's type, inserts the
	// order and its line items, and fills ID, Number and CreatedAt. A lost
	// race on the order number unique index returns ErrOrderNumberTaken.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// ListOpenByAdvisor returns the advisor's active orders in open states,
	// ordered by promised delivery time.
	ListOpenByAdvisor(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error)
	// Cancel moves the order to cancelled and clears the active flag.
	// Cancelling an already cancelled order is a no-op; a delivered order
	// returns ErrOrderClosed.
	Cancel(ctx context.Context, orderID int64) error
	// Deliver stamps the delivery and, when the order carries a service type,
	// writes its service history row using the planner's projections.
	// Terminal orders return ErrOrderClosed.
	Deliver(ctx context.Context, orderID int64, now time.Time, planner model.MaintenancePlanner) (*model.Order, error)
	// DeliveredByVehicle returns delivered, active orders for the vehicle
	// created at or after since, newest first, line items included.
	DeliveredByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]model.Order, error)
}
