package usecase

import (
	"context"

	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// CatalogUseCase exposes the read-only service catalog.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// ServiceTypes lists the active base services.
func (u *CatalogUseCase) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	return u.catalog.ServiceTypes(ctx)
}

// ExtraServices lists the active add-on services.
func (u *CatalogUseCase) ExtraServices(ctx context.Context) ([]model.ExtraService, error) {
	return u.catalog.ExtraServices(ctx)
}
