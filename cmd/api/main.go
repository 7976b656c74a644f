package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/config"
	"github.com/stockflow/inventory-api/internal/database"
	"github.com/stockflow/inventory-api/internal/http/handler"
	"github.com/stockflow/inventory-api/internal/http/middleware"
	"github.com/stockflow/inventory-api/internal/http/router"
	"github.com/stockflow/inventory-api/internal/logger"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database with retry logic
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// In development the schema is kept in sync automatically. Deployed
	// environments run versioned migrations via cmd/migrate instead.
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.App.Name, cfg.Auth.TokenTTL())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	productSupplierRepo := repository.NewProductSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerOrderRepo := repository.NewCustomerOrderRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	stockAdjustmentRepo := repository.NewStockAdjustmentRepository(db)
	inventoryTransactionRepo := repository.NewInventoryTransactionRepository(db)
	salesTransactionRepo := repository.NewSalesTransactionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	eventRepo := repository.NewEventRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, tokens, log)
	productService := service.NewProductService(productRepo, log)
	supplierService := service.NewSupplierService(supplierRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	warehouseService := service.NewWarehouseService(warehouseRepo, inventoryRepo, log)
	productSupplierService := service.NewProductSupplierService(productSupplierRepo, productRepo, supplierRepo, log)
	inventoryService := service.NewInventoryService(inventoryRepo, productRepo, warehouseRepo, log)
	orderService := service.NewOrderService(orderRepo, supplierRepo, productRepo, log)
	customerOrderService := service.NewCustomerOrderService(customerOrderRepo, customerRepo, productRepo, log)
	shipmentService := service.NewShipmentService(shipmentRepo, orderRepo, customerOrderRepo, productRepo, log)
	stockAdjustmentService := service.NewStockAdjustmentService(stockAdjustmentRepo, productRepo, warehouseRepo, log)
	inventoryTransactionService := service.NewInventoryTransactionService(inventoryTransactionRepo, productRepo, warehouseRepo, log)
	salesTransactionService := service.NewSalesTransactionService(salesTransactionRepo, productRepo, customerRepo, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)
	eventService := service.NewEventService(eventRepo, log)
	auditService := service.NewAuditLogService(auditRepo, log)

	// Every new order spawns a follow-up task for an administrator
	orderService.OnCreated(taskService.OrderCreatedHook())

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(tokens, log)
	auditMiddleware := middleware.NewAuditMiddleware(auditService, middleware.DefaultAuditConfig(), log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, log)
	userHandler := handler.NewUserHandler(userService, log)
	productHandler := handler.NewProductHandler(productService, productSupplierService, log)
	supplierHandler := handler.NewSupplierHandler(supplierService, log)
	customerHandler := handler.NewCustomerHandler(customerService, log)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService, log)
	productSupplierHandler := handler.NewProductSupplierHandler(productSupplierService, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	customerOrderHandler := handler.NewCustomerOrderHandler(customerOrderService, log)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, log)
	stockAdjustmentHandler := handler.NewStockAdjustmentHandler(stockAdjustmentService, log)
	inventoryTransactionHandler := handler.NewInventoryTransactionHandler(inventoryTransactionService, log)
	salesTransactionHandler := handler.NewSalesTransactionHandler(salesTransactionService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)
	eventHandler := handler.NewEventHandler(eventService, log)
	auditLogHandler := handler.NewAuditLogHandler(auditService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		auditMiddleware,
		rateLimiter,
		authHandler,
		userHandler,
		productHandler,
		supplierHandler,
		customerHandler,
		warehouseHandler,
		productSupplierHandler,
		inventoryHandler,
		orderHandler,
		customerOrderHandler,
		shipmentHandler,
		stockAdjustmentHandler,
		inventoryTransactionHandler,
		salesTransactionHandler,
		taskHandler,
		eventHandler,
		auditLogHandler,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
