package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

const clientColumns = `id, full_name, tax_id, mobile_phone, home_phone, email, street,
       ext_number, neighborhood, municipality, state, country, postal_code, active`

func scanClient(row pgx.Row, c *model.Client) error {
	return row.Scan(&c.ID, &c.FullName, &c.TaxID, &c.MobilePhone, &c.HomePhone, &c.Email,
		&c.Street, &c.ExtNumber, &c.Neighborhood, &c.Municipality, &c.State, &c.Country,
		&c.PostalCode, &c.Active)
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	const query = `INSERT INTO clients
            (full_name, tax_id, mobile_phone, home_phone, email, street, ext_number,
             neighborhood, municipality, state, country, postal_code, active)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
         RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		client.FullName, client.TaxID, client.MobilePhone, client.HomePhone, client.Email,
		client.Street, client.ExtNumber, client.Neighborhood, client.Municipality,
		client.State, client.Country, client.PostalCode, client.Active,
	).Scan(&client.ID)
	return translateErr(err)
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	const query = `UPDATE clients SET
            full_name=$1, tax_id=$2, mobile_phone=$3, home_phone=$4, email=$5, street=$6,
            ext_number=$7, neighborhood=$8, municipality=$9, state=$10, country=$11, postal_code=$12
         WHERE id=$13 AND active`
	tag, err := r.storage.pool.Exec(ctx, query,
		client.FullName, client.TaxID, client.MobilePhone, client.HomePhone, client.Email,
		client.Street, client.ExtNumber, client.Neighborhood, client.Municipality,
		client.State, client.Country, client.PostalCode, client.ID,
	)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	var c model.Client
	if err := scanClient(r.storage.pool.QueryRow(ctx, query, id), &c); err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *clientRepository) FindByPhone(ctx context.Context, phone string) ([]model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE mobile_phone=$1 AND active ORDER BY full_name`
	rows, err := r.storage.pool.Query(ctx, query, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
