package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

const userColumns = `u.id, u.full_name, u.username, u.password_hash, u.role_id, r.name,
       u.created_at, u.last_login, u.active, u.created_by`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.FullName, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName,
		&u.CreatedAt, &u.LastLogin, &u.Active, &u.CreatedByID)
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	const query = `INSERT INTO users (full_name, username, password_hash, role_id, active, created_by)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.FullName, user.Username, user.PasswordHash, user.RoleID, user.Active, user.CreatedByID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translateErr(err)
	}

	const roleQuery = `SELECT name FROM roles WHERE id=$1`
	if err := r.storage.pool.QueryRow(ctx, roleQuery, user.RoleID).Scan(&user.RoleName); err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + `
              FROM users u JOIN roles r ON r.id = u.role_id
              WHERE u.username=$1`
	var u model.User
	if err := scanUser(r.storage.pool.QueryRow(ctx, query, username), &u); err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + `
              FROM users u JOIN roles r ON r.id = u.role_id
              WHERE u.id=$1`
	var u model.User
	if err := scanUser(r.storage.pool.QueryRow(ctx, query, id), &u); err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + `
              FROM users u JOIN roles r ON r.id = u.role_id
              ORDER BY u.full_name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *userRepository) Roles(ctx context.Context) ([]model.Role, error) {
	const query = `SELECT id, name, description, created_at FROM roles ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, role)
	}
	return result, rows.Err()
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE users SET last_login=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, at, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
