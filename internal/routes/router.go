package routes

import (
	"net/http"

	"fleet-maintenance-manager/internal/config"
	"fleet-maintenance-manager/internal/delivery/http/handler"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres"
	"fleet-maintenance-manager/internal/logger"
	"fleet-maintenance-manager/internal/middleware"
	"fleet-maintenance-manager/internal/usecase/claim"
	"fleet-maintenance-manager/internal/usecase/dashboard"
	"fleet-maintenance-manager/internal/usecase/driver"
	"fleet-maintenance-manager/internal/usecase/insurance"
	"fleet-maintenance-manager/internal/usecase/maintenance"
	"fleet-maintenance-manager/internal/usecase/vehicle"

	"github.com/gin-gonic/gin"
)

// Services bundles the wired use-case services so callers can reuse them
// outside the HTTP surface (background jobs, ingestion).
type Services struct {
	Vehicle     *vehicle.Service
	Insurance   *insurance.Service
	Driver      *driver.Service
	Maintenance *maintenance.Service
	Claim       *claim.Service
	Dashboard   *dashboard.Service
}

func SetupRoutes(cfg *config.Config, db *postgres.DB) (*gin.Engine, *Services) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

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

	vehicleRepository := postgres.NewVehicleRepository(db)
	insuranceRepository := postgres.NewInsuranceRepository(db)
	driverRepository := postgres.NewDriverRepository(db)
	maintenanceRepository := postgres.NewMaintenanceRepository(db)
	claimRepository := postgres.NewClaimRepository(db)
	statsRepository := postgres.NewStatsRepository(db)

	windowDays := cfg.Insurance.ExpiryWindowDays

	services := &Services{
		Vehicle:     vehicle.NewService(vehicleRepository, insuranceRepository),
		Insurance:   insurance.NewService(insuranceRepository, vehicleRepository, windowDays),
		Driver:      driver.NewService(driverRepository, vehicleRepository),
		Maintenance: maintenance.NewService(maintenanceRepository, vehicleRepository),
		Claim:       claim.NewService(claimRepository, vehicleRepository, insuranceRepository),
		Dashboard:   dashboard.NewService(statsRepository, vehicleRepository, insuranceRepository, windowDays),
	}

	vehicleHandler := handler.NewVehicleHandler(services.Vehicle)
	insuranceHandler := handler.NewInsuranceHandler(services.Insurance)
	driverHandler := handler.NewDriverHandler(services.Driver)
	maintenanceHandler := handler.NewMaintenanceHandler(services.Maintenance)
	claimHandler := handler.NewClaimHandler(services.Claim)
	dashboardHandler := handler.NewDashboardHandler(services.Dashboard)

	v1 := router.Group("/api/v1")
	{
		vehicleHandler.RegisterRoutes(v1)
		insuranceHandler.RegisterRoutes(v1)
		driverHandler.RegisterRoutes(v1)
		maintenanceHandler.RegisterRoutes(v1)
		claimHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router, services
}
