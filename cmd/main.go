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

	"iot-fleet-inventory/internal/config"
	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/event"
	"iot-fleet-inventory/internal/ingestion"
	"iot-fleet-inventory/internal/logger"
	"iot-fleet-inventory/internal/repository"
	"iot-fleet-inventory/internal/routes"
	"iot-fleet-inventory/pkg/metrics"
	pkgmqtt "iot-fleet-inventory/pkg/mqtt"

	"go.uber.org/zap"
)

//	@title			IoT Fleet Inventory API
//	@version		1.0
//	@description	CRUD API for an IoT fleet inventory: sensors, gateways, products and their measurements.
//	@BasePath		/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
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

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	if cfg.Database.Seed {
		if err := db.Seed(); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Info("Database seeded")
	}

	var publisher *event.Publisher
	if cfg.AMQP.URL != "" {
		publisher, err = event.NewPublisher(&cfg.AMQP)
		if err != nil {
			logger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
		logger.Info("Event publisher connected", zap.String("queue", cfg.AMQP.Queue))
	}

	var mqttClient *ingestion.MQTTIngestionClient
	var processor *ingestion.Processor
	if cfg.MQTT.Broker != "" {
		ingestMetrics := metrics.NewIngestionMetrics("fleet_inventory")
		processor = ingestion.NewProcessor(
			repository.NewCollecteRepository(db),
			repository.NewDataCollectedRepository(db),
			publisher,
			cfg.MQTT.Workers,
			256,
			ingestMetrics,
		)
		processor.Start()

		mqttClient, err = ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
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
			MeasurementTopic: cfg.MQTT.MeasurementTopic,
			QoS:              byte(cfg.MQTT.QoS),
		}, processor)
		if err != nil {
			logger.Fatal("Failed to build MQTT ingestion client", zap.Error(err))
		}
		if err := mqttClient.Start(); err != nil {
			logger.Fatal("Failed to start MQTT ingestion", zap.Error(err))
		}
		logger.Info("MQTT ingestion started", zap.String("topic", cfg.MQTT.MeasurementTopic))
	}

	router := routes.SetupRoutes(cfg, db)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

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

	if mqttClient != nil {
		mqttClient.Stop()
	}
	if processor != nil {
		processor.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
