package repository

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
)

// ClientRepository describes persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	FindByPhone(ctx context.Context, phone string) ([]model.Client, error)
}
