package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "motorent-backend/internal/api/http"
	"motorent-backend/internal/config"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/messaging"
	"motorent-backend/internal/repository/postgres"
	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Motorent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	var imageStore storage.Storage
	switch cfg.Storage.Type {
	case "minio":
		logger.Info("Using MinIO storage", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
		minioStore, err := storage.NewMinioStorage(
			cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
			cfg.Storage.Bucket, cfg.Storage.UseSSL,
		)
		if err != nil {
			logger.Error("Failed to initialize MinIO storage", "error", err)
			log.Fatalf("Failed to initialize MinIO storage: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := minioStore.EnsureBucket(ctx); err != nil {
			cancel()
			logger.Error("Failed to ensure MinIO bucket", "error", err)
			log.Fatalf("Failed to ensure MinIO bucket: %v", err)
		}
		cancel()
		imageStore = minioStore
	default:
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		imageStore = localStore
	}

	// Initialize Event Publisher
	publisher, err := messaging.NewRabbitMQPublisher(cfg.GetRabbitMQURL(), cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Initialize Consumer
	consumer, err := messaging.NewMotorcycleCreatedConsumer(
		cfg.GetRabbitMQURL(), cfg.RabbitMQ.Exchange,
		"motorcycle-notifications", store.NotificationRepository,
	)
	if err != nil {
		logger.Error("Failed to start motorcycle event consumer", "error", err)
		log.Fatalf("Failed to start motorcycle event consumer: %v", err)
	}
	defer consumer.Close()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go func() {
		if err := consumer.Start(consumerCtx); err != nil && consumerCtx.Err() == nil {
			logger.Error("Motorcycle event consumer stopped", "error", err)
		}
	}()

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	motorcycleSvc := service.NewMotorcycleService(store.MotorcycleRepository, store.RentalRepository, publisher)
	personSvc := service.NewDeliveryPersonService(store.DeliveryPersonRepository, store.RentalRepository, imageStore)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.MotorcycleRepository, store.DeliveryPersonRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(&httpapi.Services{
		Auth:           authSvc,
		Motorcycles:    motorcycleSvc,
		DeliveryPeople: personSvc,
		Rentals:        rentalSvc,
		Notifications:  noteSvc,
		Store:          imageStore,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	stopConsumer()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
