package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "roomstay-backend/internal/api/http"
	"roomstay-backend/internal/billing"
	"roomstay-backend/internal/config"
	"roomstay-backend/internal/logger"
	"roomstay-backend/internal/repository/postgres"
	"roomstay-backend/internal/security"
	"roomstay-backend/internal/service"
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
	logger.Info("Starting RoomStay Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Billing rates", "water", cfg.Billing.WaterRate, "electric", cfg.Billing.ElectricRate)

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

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	roomSvc := service.NewRoomService(store.RoomRepository)
	catalogSvc := service.NewCatalogService(store.ExtraRepository, store.CustomerRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.RoomRepository,
		store.CustomerRepository,
		store.ExtraRepository,
		emailSvc,
	)
	invoiceSvc := service.NewInvoiceService(
		store.InvoiceRepository,
		store.RentalRepository,
		store.RoomRepository,
		store.CustomerRepository,
		billing.Rates{Water: cfg.Billing.WaterRate, Electric: cfg.Billing.ElectricRate},
		emailSvc,
	)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Room:    httpapi.NewRoomHandler(roomSvc),
		Rental:  httpapi.NewRentalHandler(rentalSvc),
		Invoice: httpapi.NewInvoiceHandler(invoiceSvc),
		Catalog: httpapi.NewCatalogHandler(catalogSvc),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
