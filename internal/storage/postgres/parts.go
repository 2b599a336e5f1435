package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

const partColumns = `id, part_number, part_type, vehicle_make, vehicle_model, year,
       quantity, registered_at, updated_at, active`

func scanPart(row pgx.Row, p *model.Part) error {
	return row.Scan(&p.ID, &p.PartNumber, &p.PartType, &p.VehicleMake, &p.VehicleModel,
		&p.Year, &p.Quantity, &p.RegisteredAt, &p.UpdatedAt, &p.Active)
}

func (r *partRepository) List(ctx context.Context) ([]model.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE active ORDER BY part_type, part_number`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Part
	for rows.Next() {
		var p model.Part
		if err := scanPart(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *partRepository) GetByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE part_number=$1 AND active`
	var p model.Part
	if err := scanPart(r.storage.pool.QueryRow(ctx, query, partNumber), &p); err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (r *partRepository) Create(ctx context.Context, part *model.Part) error {
	const query = `INSERT INTO parts (part_number, part_type, vehicle_make, vehicle_model, year, quantity, active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, registered_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		part.PartNumber, part.PartType, part.VehicleMake, part.VehicleModel,
		part.Year, part.Quantity, part.Active,
	).Scan(&part.ID, &part.RegisteredAt, &part.UpdatedAt)
	return translateErr(err)
}

// AdjustQuantity applies the delta under a row lock so concurrent stock
// movements cannot drive the count negative.
func (r *partRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (int, error) {
	var quantity int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `SELECT quantity FROM parts WHERE id=$1 AND active FOR UPDATE`
		if err := tx.QueryRow(ctx, query, id).Scan(&quantity); err != nil {
			return err
		}

		quantity += delta
		if quantity < 0 {
			return domainErrors.ErrInsufficientStock
		}

		const update = `UPDATE parts SET quantity=$1, updated_at=NOW() WHERE id=$2`
		_, err := tx.Exec(ctx, update, quantity, id)
		return err
	})
	if err != nil {
		return 0, translateErr(err)
	}
	return quantity, nil
}

func (r *partRepository) Delete(ctx context.Context, id int64) error {
	const query = `UPDATE parts SET active=FALSE, updated_at=NOW() WHERE id=$1 AND active`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
