package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restockhq/restock-api/internal/application/service"
	"github.com/restockhq/restock-api/internal/config"
	"github.com/restockhq/restock-api/internal/infrastructure/database"
	"github.com/restockhq/restock-api/internal/infrastructure/repository"
	"github.com/restockhq/restock-api/internal/presentation/http/handler"
	"github.com/restockhq/restock-api/internal/presentation/http/routes"
	"github.com/restockhq/restock-api/pkg/oauth"
	"github.com/restockhq/restock-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	itemRepo := repository.NewItemRepository(db)
	outletRepo := repository.NewOutletRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google sign-in service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		SuccessURL:   cfg.OAuth.SuccessURL,
		FailureURL:   cfg.OAuth.FailureURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleService)
	supplierService := service.NewSupplierService(supplierRepo)
	itemService := service.NewItemService(itemRepo, supplierRepo)
	outletService := service.NewOutletService(outletRepo)
	orderService := service.NewOrderService(orderRepo, supplierRepo, itemRepo, outletRepo, cfg.Order.RefPrefix, time.Now)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg.OAuth.SuccessURL, cfg.OAuth.FailureURL),
		Supplier: handler.NewSupplierHandler(supplierService),
		Item:     handler.NewItemHandler(itemService),
		Outlet:   handler.NewOutletHandler(outletService),
		Order:    handler.NewOrderHandler(orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
