package repository

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
)

// PartRepository describes inventory persistence for spare parts.
type PartRepository interface {
	List(ctx context.Context) ([]model.Part, error)
	GetByNumber(ctx context.Context, partNumber string) (*model.Part, error)
	// Create inserts the part; a duplicate part number returns ErrAlreadyExists.
	Create(ctx context.Context, part *model.Part) error
	// AdjustQuantity changes stock by delta and returns the new quantity.
	// A decrease past zero returns ErrInsufficientStock.
	AdjustQuantity(ctx context.Context, id int64, delta int) (int, error)
	// Delete soft-deletes the part.
	Delete(ctx context.Context, id int64) error
}
