package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/carsline/api/internal/config"
	"github.com/carsline/api/internal/server/http/handlers"
	"github.com/carsline/api/internal/storage/postgres"
)

// Module wires the gin engine for fx graphs.
var Module = fx.Options(
	fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
	fx.Provide(newRouter),
)

type routerParams struct {
	fx.In

	Facade handlers.WorkshopFacade
	Pinger handlers.Pinger
	Config *config.Config
	Logger *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Pinger, p.Config, p.Logger)
}
