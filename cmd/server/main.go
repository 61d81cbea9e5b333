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

	httpapi "frota-backend/internal/api/http"
	"frota-backend/internal/config"
	"frota-backend/internal/database/migrations"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
	firestorerepo "frota-backend/internal/repository/firestore"
	"frota-backend/internal/repository/memory"
	"frota-backend/internal/repository/postgres"
	"frota-backend/internal/security"
	"frota-backend/internal/service"
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
	logger.Info("Starting Frota Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "driver", cfg.Database.Driver)

	store, cleanup := openStore(cfg)
	defer cleanup()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	tireSvc := service.NewTireService(store.Tires, store.Movements, store.Vehicles)
	vehicleSvc := service.NewVehicleService(store.Vehicles, store.Tires)
	maintenanceSvc := service.NewMaintenanceService(store.Maintenances, store.Vehicles)
	authSvc := service.NewAuthService(store.Users, tokenManager)

	router := httpapi.NewRouter(&httpapi.Services{
		Tire:        tireSvc,
		Vehicle:     vehicleSvc,
		Maintenance: maintenanceSvc,
		Auth:        authSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// openStore builds the repository bundle for the configured driver and
// returns a cleanup function for the underlying connection.
func openStore(cfg *config.Config) (*repository.Store, func()) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		if err := migrations.Up(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Database connection established",
			"host", cfg.Database.Host, "database", cfg.Database.Database)
		return postgres.NewStore(db), func() { db.Close() }

	case "firestore":
		fs, err := firestorerepo.NewStore(context.Background(),
			cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to connect to firestore: %v", err)
		}
		logger.Info("Firestore connection established", "project", cfg.Firestore.ProjectID)
		return &fs.Store, func() { fs.Close() }

	case "memory":
		logger.Warn("Using in-memory store, data will not survive restarts")
		return &memory.NewStore().Store, func() {}

	default:
		log.Fatalf("Unknown database driver: %q", cfg.Database.Driver)
		return nil, nil
	}
}
