package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-maintenance-manager/internal/config"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres"
	"fleet-maintenance-manager/internal/ingestion"
	"fleet-maintenance-manager/internal/logger"
	"fleet-maintenance-manager/internal/routes"
	pkgmqtt "fleet-maintenance-manager/pkg/mqtt"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	router, services := routes.SetupRoutes(cfg, db)

	// Background expiry reconciliation. A zero interval disables the job;
	// the POST /api/v1/insurance/reconcile endpoint stays available either way.
	jobCtx, jobCancel := context.WithCancel(context.Background())
	defer jobCancel()
	if cfg.Insurance.ReconcileInterval > 0 {
		go services.Insurance.StartReconcileJob(jobCtx, cfg.Insurance.ReconcileInterval)
	}

	// Odometer telemetry ingestion, enabled when a broker is configured.
	var ingestionClient *ingestion.MQTTIngestionClient
	if cfg.MQTT.Broker != "" {
		vehicleRepo := postgres.NewVehicleRepository(db)
		processor := ingestion.NewProcessor(vehicleRepo, 2, 256)
		processor.Start()
		defer processor.Stop()

		ingestionClient, err = ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
			ClientConfig: &pkgmqtt.Config{
				Broker:               cfg.MQTT.Broker,
				ClientID:             cfg.MQTT.ClientID,
				Username:             cfg.MQTT.Username,
				Password:             cfg.MQTT.Password,
				CleanSession:         true,
				KeepAlive:            30,
				ConnectTimeout:       10,
				AutoReconnect:        true,
				MaxReconnectInterval: time.Minute,
			},
			OdometerTopic: cfg.MQTT.OdometerTopic,
			QoS:           1,
		}, processor)
		if err != nil {
			logger.Fatal("Failed to build MQTT ingestion client", zap.Error(err))
		}

		if err := ingestionClient.Start(); err != nil {
			logger.Fatal("Failed to start MQTT ingestion", zap.Error(err))
		}
		defer ingestionClient.Stop()
	}

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
