package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/carsline/api/internal/config"
	"github.com/carsline/api/internal/server/http/handlers"
	"github.com/carsline/api/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.WorkshopFacade, pinger handlers.Pinger, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	vehicleHandler := handlers.NewVehicleHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	partHandler := handlers.NewPartHandler(facade)
	healthHandler := handlers.NewHealthHandler(pinger)

	// login gets a strict budget against credential stuffing
	loginLimiter := middleware.NewRateLimiter(rate.Limit(2), 5)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/login", loginLimiter.Handler(), authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))

	protected.POST("/auth/users", authHandler.CreateUser)
	protected.GET("/auth/users", authHandler.Users)
	protected.GET("/auth/roles", authHandler.Roles)

	protected.POST("/clients", clientHandler.Create)
	protected.PUT("/clients/:id", clientHandler.Update)
	protected.GET("/clients/by-phone/:phone", clientHandler.FindByPhone)

	protected.POST("/vehicles", vehicleHandler.Create)
	protected.GET("/vehicles/by-vin/:vin", vehicleHandler.FindByVIN)

	protected.GET("/catalog/service-types", catalogHandler.ServiceTypes)
	protected.GET("/catalog/extra-services", catalogHandler.ExtraServices)

	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/advisor/:orderType", orderHandler.ListByType)
	protected.PUT("/orders/:id/cancel", orderHandler.Cancel)
	protected.PUT("/orders/:id/deliver", orderHandler.Deliver)
	protected.GET("/orders/vehicle-history/:vehicleId", orderHandler.VehicleHistory)

	protected.GET("/parts", partHandler.List)
	protected.GET("/parts/by-number/:partNumber", partHandler.FindByNumber)
	protected.POST("/parts", partHandler.Create)
	protected.PUT("/parts/:id/increase/:qty", partHandler.Increase)
	protected.PUT("/parts/:id/decrease/:qty", partHandler.Decrease)
	protected.DELETE("/parts/:id", partHandler.Delete)

	return engine
}
