package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

const orderColumns = `id, order_number, order_type, client_id, vehicle_id, advisor_id,
       service_type_id, mileage, status, promised_at, created_at, started_at,
       finished_at, delivered_at, notes, total_cost, active`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.Number, &o.Type, &o.ClientID, &o.VehicleID, &o.AdvisorID,
		&o.ServiceTypeID, &o.Mileage, &o.Status, &o.PromisedAt, &o.CreatedAt, &o.StartedAt,
		&o.FinishedAt, &o.DeliveredAt, &o.Notes, &o.TotalCost, &o.Active)
}

// Create assigns the next order number for the order's type and inserts the
// order with its line items in a single transaction. The number is derived by
// scanning existing numbers with the same prefix; a concurrent creation that
// wins the same sequence trips the unique index, surfaced as
// ErrOrderNumberTaken for the usecase to retry.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		prefix := order.Type.Prefix()

		const numbersQuery = `SELECT order_number FROM orders WHERE order_number LIKE $1`
		rows, err := tx.Query(ctx, numbersQuery, prefix+"-%")
		if err != nil {
			return err
		}
		var existing []string
		for rows.Next() {
			var number string
			if err := rows.Scan(&number); err != nil {
				rows.Close()
				return err
			}
			existing = append(existing, number)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		order.Number = model.FormatOrderNumber(prefix, model.NextSequence(existing))

		const insertOrder = `INSERT INTO orders
                (order_number, order_type, client_id, vehicle_id, advisor_id, service_type_id,
                 mileage, status, promised_at, notes, total_cost, active)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
             RETURNING id, created_at`
		err = tx.QueryRow(ctx, insertOrder,
			order.Number, order.Type, order.ClientID, order.VehicleID, order.AdvisorID,
			order.ServiceTypeID, order.Mileage, order.Status, order.PromisedAt,
			order.Notes, order.TotalCost, order.Active,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_line_items (order_id, extra_service_id, price_applied)
                            VALUES ($1, $2, $3) RETURNING id`
		for i := range order.Extras {
			item := &order.Extras[i]
			item.OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, order.ID, item.ExtraServiceID, item.PriceApplied).Scan(&item.ID); err != nil {
				return err
			}
		}

		return nil
	})
	return translateErr(err)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		return nil, translateErr(err)
	}

	items, err := r.lineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Extras = items
	return &o, nil
}

func (r *orderRepository) lineItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	const query = `SELECT id, order_id, extra_service_id, price_applied
                   FROM order_line_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderLineItem
	for rows.Next() {
		var item model.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ExtraServiceID, &item.PriceApplied); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) ListOpenByAdvisor(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders
              WHERE advisor_id=$1 AND order_type=$2 AND active AND status IN (1, 2, 3)
              ORDER BY promised_at`
	rows, err := r.storage.pool.Query(ctx, query, advisorID, orderType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// Cancel re-applies the cancelled state freely but refuses to pull back an
// order that already left the workshop.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var status model.OrderStatus
		if err := tx.QueryRow(ctx, query, orderID).Scan(&status); err != nil {
			return err
		}
		if status == model.OrderStatusDelivered {
			return domainErrors.ErrOrderClosed
		}

		const update = `UPDATE orders SET status=$1, active=FALSE WHERE id=$2`
		_, err := tx.Exec(ctx, update, model.OrderStatusCancelled, orderID)
		return err
	})
	return translateErr(err)
}

// Deliver stamps the delivery and writes the service history row when the
// order carries a service type. Both writes share one transaction.
func (r *orderRepository) Deliver(ctx context.Context, orderID int64, now time.Time, planner model.MaintenancePlanner) (*model.Order, error) {
	var delivered model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		if err := scanOrder(tx.QueryRow(ctx, query, orderID), &delivered); err != nil {
			return err
		}
		if delivered.Status.Terminal() {
			return domainErrors.ErrOrderClosed
		}

		const update = `UPDATE orders SET status=$1, delivered_at=$2 WHERE id=$3`
		if _, err := tx.Exec(ctx, update, model.OrderStatusDelivered, now, orderID); err != nil {
			return err
		}
		delivered.Status = model.OrderStatusDelivered
		delivered.DeliveredAt = &now

		if delivered.ServiceTypeID != nil {
			nextMileage := planner.NextMileage(delivered.Mileage)
			nextDate := planner.NextDate(now)

			const insertHistory = `INSERT INTO service_history
                    (vehicle_id, order_id, service_type_id, mileage, service_date,
                     next_mileage, next_date, total_cost)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
			if _, err := tx.Exec(ctx, insertHistory,
				delivered.VehicleID, delivered.ID, *delivered.ServiceTypeID, delivered.Mileage,
				now, nextMileage, nextDate, delivered.TotalCost,
			); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &delivered, nil
}

func (r *orderRepository) DeliveredByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders
              WHERE vehicle_id=$1 AND active AND status=$2 AND created_at >= $3
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, vehicleID, model.OrderStatusDelivered, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.lineItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Extras = items
	}

	return result, nil
}
