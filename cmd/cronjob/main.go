package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"frota-backend/internal/config"
	"frota-backend/internal/jobs"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
	firestorerepo "frota-backend/internal/repository/firestore"
	"frota-backend/internal/repository/memory"
	"frota-backend/internal/repository/postgres"
	"frota-backend/internal/scheduler"
	"frota-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'low-tread-alerts', 'activate-maintenance', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Frota Cronjob Runner...", "log_level", cfg.Log.Level)

	store, cleanup := openStore(cfg)
	defer cleanup()

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)
	tireService := service.NewTireService(store.Tires, store.Movements, store.Vehicles)
	maintenanceService := service.NewMaintenanceService(store.Maintenances, store.Vehicles)

	jobServices := &jobs.Services{
		Tire:        tireService,
		Maintenance: maintenanceService,
		Email:       emailService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Run-once mode: execute the named job and exit
	if *runOnce != "" {
		switch *runOnce {
		case "low-tread-alerts":
			jobRunner.SendLowTreadAlerts()
		case "activate-maintenance":
			jobRunner.ActivateScheduledMaintenance()
		case "all-daily":
			jobRunner.RunAllDailyJobs()
		default:
			log.Fatalf("Unknown job: %q", *runOnce)
		}
		return
	}

	// Scheduled mode: register cron entries and block until signalled
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
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
		return postgres.NewStore(db), func() { db.Close() }

	case "firestore":
		fs, err := firestorerepo.NewStore(context.Background(),
			cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to connect to firestore: %v", err)
		}
		return &fs.Store, func() { fs.Close() }

	case "memory":
		return &memory.NewStore().Store, func() {}

	default:
		log.Fatalf("Unknown database driver: %q", cfg.Database.Driver)
		return nil, nil
	}
}
