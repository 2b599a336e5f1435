package usecase

import (
	"go.uber.org/fx"

	"github.com/carsline/api/internal/config"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewClientUseCase,
		NewVehicleUseCase,
		NewCatalogUseCase,
		NewPartUseCase,
	),
	fx.Provide(newOrderUseCase),
)

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Catalog repository.CatalogRepository
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	planner := model.FixedIntervalPlanner{
		MileageStep: p.Config.NextServiceKM,
		MonthsAhead: p.Config.NextServiceMonths,
	}
	return NewOrderUseCase(p.Orders, p.Catalog, planner, p.Config.OrderCreateRetries)
}
