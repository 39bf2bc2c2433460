package routes

import (
	"net/http"

	"iot-fleet-inventory/internal/config"
	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/handler"
	"iot-fleet-inventory/internal/logger"
	"iot-fleet-inventory/internal/middleware"
	"iot-fleet-inventory/internal/repository"
	"iot-fleet-inventory/pkg/metrics"

	_ "iot-fleet-inventory/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	httpMetrics := metrics.NewHTTPMetrics("fleet_inventory")

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(httpMetrics))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sensorHandler := handler.NewSensorHandler(repository.NewSensorRepository(db))
	gatewayHandler := handler.NewGatewayHandler(repository.NewGatewayRepository(db))
	adminHandler := handler.NewAdminHandler(repository.NewAdminRepository(db))
	productHandler := handler.NewProductHandler(repository.NewProductRepository(db))
	compositionHandler := handler.NewCompositionHandler(repository.NewCompositionRepository(db))
	assignementHandler := handler.NewAssignementHandler(repository.NewAssignementRepository(db))
	collecteHandler := handler.NewCollecteHandler(repository.NewCollecteRepository(db))
	dataCollectedHandler := handler.NewDataCollectedHandler(repository.NewDataCollectedRepository(db))

	api := router.Group("/api")
	{
		sensorHandler.RegisterRoutes(api)
		gatewayHandler.RegisterRoutes(api)
		adminHandler.RegisterRoutes(api)
		productHandler.RegisterRoutes(api)
		compositionHandler.RegisterRoutes(api)
		assignementHandler.RegisterRoutes(api)
		collecteHandler.RegisterRoutes(api)
		dataCollectedHandler.RegisterRoutes(api)
	}

	logger.Info("All routes initialized")
	return router
}
