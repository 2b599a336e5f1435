package repository

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
)

// CatalogRepository exposes the service catalog used for order pricing.
type CatalogRepository interface {
	ServiceTypes(ctx context.Context) ([]model.ServiceType, error)
	ExtraServices(ctx context.Context) ([]model.ExtraService, error)
	GetServiceType(ctx context.Context, id int64) (*model.ServiceType, error)
	// ExtraServicesByIDs returns the catalog entries matching ids. Unknown ids
	// are simply absent from the result.
	ExtraServicesByIDs(ctx context.Context, ids []int64) ([]model.ExtraService, error)
}
