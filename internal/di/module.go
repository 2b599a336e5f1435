package di

import (
	"go.uber.org/fx"

	"github.com/carsline/api/internal/app"
	"github.com/carsline/api/internal/config"
	"github.com/carsline/api/internal/logger"
	"github.com/carsline/api/internal/pkg/auth"
	"github.com/carsline/api/internal/server/http/router"
	"github.com/carsline/api/internal/storage/postgres"
	"github.com/carsline/api/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
