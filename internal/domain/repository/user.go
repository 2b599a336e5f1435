package repository

import (
	"context"
	"time"

	"github.com/carsline/api/internal/domain/model"
)

// UserRepository describes persistence operations for workshop users.
type UserRepository interface {
	// Create inserts the user; a duplicate username returns ErrAlreadyExists.
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Roles(ctx context.Context) ([]model.Role, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
