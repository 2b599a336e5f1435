package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/carsline/api/internal/domain/model"
)

const vehicleColumns = `id, client_id, vin, make, model, trim, year, color, plates, initial_mileage, active`

func scanVehicle(row pgx.Row, v *model.Vehicle) error {
	return row.Scan(&v.ID, &v.ClientID, &v.VIN, &v.Make, &v.Model, &v.Trim, &v.Year,
		&v.Color, &v.Plates, &v.InitialMileage, &v.Active)
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	const query = `INSERT INTO vehicles
            (client_id, vin, make, model, trim, year, color, plates, initial_mileage, active)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		vehicle.ClientID, vehicle.VIN, vehicle.Make, vehicle.Model, vehicle.Trim,
		vehicle.Year, vehicle.Color, vehicle.Plates, vehicle.InitialMileage, vehicle.Active,
	).Scan(&vehicle.ID)
	return translateErr(err)
}

func (r *vehicleRepository) GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vin=$1 AND active`
	var v model.Vehicle
	if err := scanVehicle(r.storage.pool.QueryRow(ctx, query, vin), &v); err != nil {
		return nil, translateErr(err)
	}
	return &v, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id=$1`
	var v model.Vehicle
	if err := scanVehicle(r.storage.pool.QueryRow(ctx, query, id), &v); err != nil {
		return nil, translateErr(err)
	}
	return &v, nil
}
