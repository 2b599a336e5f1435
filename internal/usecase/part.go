package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// PartUseCase manages the spare parts inventory.
type PartUseCase struct {
	parts repository.PartRepository
}

// NewPartUseCase constructs PartUseCase.
func NewPartUseCase(parts repository.PartRepository) *PartUseCase {
	return &PartUseCase{parts: parts}
}

// List returns the active inventory.
func (u *PartUseCase) List(ctx context.Context) ([]model.Part, error) {
	return u.parts.List(ctx)
}

// FindByNumber looks a part up by its part number, case-insensitively.
func (u *PartUseCase) FindByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	partNumber = strings.ToUpper(strings.TrimSpace(partNumber))
	if partNumber == "" {
		return nil, fmt.Errorf("%w: part number is required", domainErrors.ErrValidation)
	}
	return u.parts.GetByNumber(ctx, partNumber)
}

// Create registers a part. Part numbers are stored uppercased.
func (u *PartUseCase) Create(ctx context.Context, part *model.Part) error {
	part.PartNumber = strings.ToUpper(strings.TrimSpace(part.PartNumber))
	part.PartType = strings.TrimSpace(part.PartType)
	switch {
	case part.PartNumber == "":
		return fmt.Errorf("%w: part number is required", domainErrors.ErrValidation)
	case part.PartType == "":
		return fmt.Errorf("%w: part type is required", domainErrors.ErrValidation)
	case part.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrValidation)
	}
	part.Active = true
	return u.parts.Create(ctx, part)
}

// Increase adds qty units of stock and returns the new quantity.
func (u *PartUseCase) Increase(ctx context.Context, id int64, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}
	return u.parts.AdjustQuantity(ctx, id, qty)
}

// Decrease removes qty units of stock and returns the new quantity.
func (u *PartUseCase) Decrease(ctx context.Context, id int64, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}
	return u.parts.AdjustQuantity(ctx, id, -qty)
}

// Delete removes a part from the visible inventory.
func (u *PartUseCase) Delete(ctx context.Context, id int64) error {
	return u.parts.Delete(ctx, id)
}
