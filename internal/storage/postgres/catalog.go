package postgres

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
)

func (r *catalogRepository) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	const query = `SELECT id, name, description, base_price, active
                   FROM service_types WHERE active ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ServiceType
	for rows.Next() {
		var st model.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.BasePrice, &st.Active); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ExtraServices(ctx context.Context) ([]model.ExtraService, error) {
	const query = `SELECT id, name, description, price, category, active
                   FROM extra_services WHERE active ORDER BY category, name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExtraService
	for rows.Next() {
		var es model.ExtraService
		if err := rows.Scan(&es.ID, &es.Name, &es.Description, &es.Price, &es.Category, &es.Active); err != nil {
			return nil, err
		}
		result = append(result, es)
	}
	return result, rows.Err()
}

func (r *catalogRepository) GetServiceType(ctx context.Context, id int64) (*model.ServiceType, error) {
	const query = `SELECT id, name, description, base_price, active FROM service_types WHERE id=$1`
	var st model.ServiceType
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.Description, &st.BasePrice, &st.Active)
	if err != nil {
		return nil, translateErr(err)
	}
	return &st, nil
}

func (r *catalogRepository) ExtraServicesByIDs(ctx context.Context, ids []int64) ([]model.ExtraService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `SELECT id, name, description, price, category, active
                   FROM extra_services WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExtraService
	for rows.Next() {
		var es model.ExtraService
		if err := rows.Scan(&es.ID, &es.Name, &es.Description, &es.Price, &es.Category, &es.Active); err != nil {
			return nil, err
		}
		result = append(result, es)
	}
	return result, rows.Err()
}
