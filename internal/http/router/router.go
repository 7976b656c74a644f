package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/config"
	"github.com/stockflow/inventory-api/internal/database"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/http/handler"
	"github.com/stockflow/inventory-api/internal/http/middleware"
)

type Router struct {
	cfg                         *config.Config
	logger                      *zap.Logger
	db                          *gorm.DB
	authMiddleware              *auth.Middleware
	auditMiddleware             *middleware.AuditMiddleware
	rateLimiter                 *middleware.RateLimiter
	authHandler                 *handler.AuthHandler
	userHandler                 *handler.UserHandler
	productHandler              *handler.ProductHandler
	supplierHandler             *handler.SupplierHandler
	customerHandler             *handler.CustomerHandler
	warehouseHandler            *handler.WarehouseHandler
	productSupplierHandler      *handler.ProductSupplierHandler
	inventoryHandler            *handler.InventoryHandler
	orderHandler                *handler.OrderHandler
	customerOrderHandler        *handler.CustomerOrderHandler
	shipmentHandler             *handler.ShipmentHandler
	stockAdjustmentHandler      *handler.StockAdjustmentHandler
	inventoryTransactionHandler *handler.InventoryTransactionHandler
	salesTransactionHandler     *handler.SalesTransactionHandler
	taskHandler                 *handler.TaskHandler
	eventHandler                *handler.EventHandler
	auditLogHandler             *handler.AuditLogHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	auditMiddleware *middleware.AuditMiddleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	supplierHandler *handler.SupplierHandler,
	customerHandler *handler.CustomerHandler,
	warehouseHandler *handler.WarehouseHandler,
	productSupplierHandler *handler.ProductSupplierHandler,
	inventoryHandler *handler.InventoryHandler,
	orderHandler *handler.OrderHandler,
	customerOrderHandler *handler.CustomerOrderHandler,
	shipmentHandler *handler.ShipmentHandler,
	stockAdjustmentHandler *handler.StockAdjustmentHandler,
	inventoryTransactionHandler *handler.InventoryTransactionHandler,
	salesTransactionHandler *handler.SalesTransactionHandler,
	taskHandler *handler.TaskHandler,
	eventHandler *handler.EventHandler,
	auditLogHandler *handler.AuditLogHandler,
) *Router {
	return &Router{
		cfg:                         cfg,
		logger:                      logger,
		db:                          db,
		authMiddleware:              authMiddleware,
		auditMiddleware:             auditMiddleware,
		rateLimiter:                 rateLimiter,
		authHandler:                 authHandler,
		userHandler:                 userHandler,
		productHandler:              productHandler,
		supplierHandler:             supplierHandler,
		customerHandler:             customerHandler,
		warehouseHandler:            warehouseHandler,
		productSupplierHandler:      productSupplierHandler,
		inventoryHandler:            inventoryHandler,
		orderHandler:                orderHandler,
		customerOrderHandler:        customerOrderHandler,
		shipmentHandler:             shipmentHandler,
		stockAdjustmentHandler:      stockAdjustmentHandler,
		inventoryTransactionHandler: inventoryTransactionHandler,
		salesTransactionHandler:     salesTransactionHandler,
		taskHandler:                 taskHandler,
		eventHandler:                eventHandler,
		auditLogHandler:             auditLogHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/register", rt.authHandler.Register)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.auditMiddleware.Audit)

			// Auth & users
			r.Get("/auth/me", rt.authHandler.Me)

			// User administration is restricted to administrators.
			r.Route("/users", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(domain.RoleAdministrator))
				r.Get("/", rt.userHandler.List)
				r.Get("/{id}", rt.userHandler.GetByID)
				r.Delete("/{id}", rt.userHandler.Delete)
			})

			// Audit trail (administrators only)
			r.Route("/audit-logs", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(domain.RoleAdministrator))
				r.Get("/", rt.auditLogHandler.List)
				r.Get("/entity/{entityType}/{entityId}", rt.auditLogHandler.ListByEntity)
				r.Get("/{id}", rt.auditLogHandler.GetByID)
			})

			// Products
			r.Route("/products", func(r chi.Router) {
				r.Get("/", rt.productHandler.List)
				r.Post("/", rt.productHandler.Create)
				r.Get("/search", rt.productHandler.Search)
				r.Get("/{id}", rt.productHandler.GetByID)
				r.Put("/{id}", rt.productHandler.Update)
				r.Delete("/{id}", rt.productHandler.Delete)
				r.Get("/{id}/suppliers", rt.productHandler.ListSuppliers)
			})

			// Suppliers
			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", rt.supplierHandler.List)
				r.Post("/", rt.supplierHandler.Create)
				r.Get("/search", rt.supplierHandler.Search)
				r.Get("/{id}", rt.supplierHandler.GetByID)
				r.Put("/{id}", rt.supplierHandler.Update)
				r.Delete("/{id}", rt.supplierHandler.Delete)
			})

			// Customers
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", rt.customerHandler.List)
				r.Post("/", rt.customerHandler.Create)
				r.Get("/search", rt.customerHandler.Search)
				r.Get("/{id}", rt.customerHandler.GetByID)
				r.Put("/{id}", rt.customerHandler.Update)
				r.Delete("/{id}", rt.customerHandler.Delete)
			})

			// Warehouses
			r.Route("/warehouses", func(r chi.Router) {
				r.Get("/", rt.warehouseHandler.List)
				r.Post("/", rt.warehouseHandler.Create)
				r.Get("/search", rt.warehouseHandler.Search)
				r.Get("/{id}", rt.warehouseHandler.GetByID)
				r.Put("/{id}", rt.warehouseHandler.Update)
				r.Delete("/{id}", rt.warehouseHandler.Delete)
				r.Get("/{id}/inventory", rt.warehouseHandler.ListInventory)
			})

			// Product-supplier links
			r.Route("/product-suppliers", func(r chi.Router) {
				r.Get("/", rt.productSupplierHandler.List)
				r.Post("/", rt.productSupplierHandler.Create)
				r.Get("/{id}", rt.productSupplierHandler.GetByID)
				r.Put("/{id}", rt.productSupplierHandler.Update)
				r.Delete("/{id}", rt.productSupplierHandler.Delete)
			})

			// Inventory
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", rt.inventoryHandler.List)
				r.Post("/", rt.inventoryHandler.Create)
				r.Get("/search", rt.inventoryHandler.Search)
				r.Get("/{id}", rt.inventoryHandler.GetByID)
				r.Put("/{id}", rt.inventoryHandler.Update)
				r.Delete("/{id}", rt.inventoryHandler.Delete)
			})

			// Purchase orders
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", rt.orderHandler.List)
				r.Post("/", rt.orderHandler.Create)
				r.Get("/search", rt.orderHandler.Search)
				r.Get("/{id}", rt.orderHandler.GetByID)
				r.Put("/{id}", rt.orderHandler.Update)
				r.Delete("/{id}", rt.orderHandler.Delete)
				r.Post("/{id}/cancel", rt.orderHandler.Cancel)
				r.Get("/{id}/details", rt.orderHandler.ListDetails)
				r.Post("/{id}/details", rt.orderHandler.CreateDetail)
				r.Get("/{id}/details/{detailId}", rt.orderHandler.GetDetail)
				r.Put("/{id}/details/{detailId}", rt.orderHandler.UpdateDetail)
				r.Delete("/{id}/details/{detailId}", rt.orderHandler.DeleteDetail)
			})

			// Customer orders
			r.Route("/customer-orders", func(r chi.Router) {
				r.Get("/", rt.customerOrderHandler.List)
				r.Post("/", rt.customerOrderHandler.Create)
				r.Get("/search", rt.customerOrderHandler.Search)
				r.Get("/{id}", rt.customerOrderHandler.GetByID)
				r.Put("/{id}", rt.customerOrderHandler.Update)
				r.Delete("/{id}", rt.customerOrderHandler.Delete)
				r.Get("/{id}/details", rt.customerOrderHandler.ListDetails)
				r.Post("/{id}/details", rt.customerOrderHandler.CreateDetail)
				r.Get("/{id}/details/{detailId}", rt.customerOrderHandler.GetDetail)
				r.Put("/{id}/details/{detailId}", rt.customerOrderHandler.UpdateDetail)
				r.Delete("/{id}/details/{detailId}", rt.customerOrderHandler.DeleteDetail)
			})

			// Shipments
			r.Route("/shipments", func(r chi.Router) {
				r.Get("/", rt.shipmentHandler.List)
				r.Post("/", rt.shipmentHandler.Create)
				r.Get("/search", rt.shipmentHandler.Search)
				r.Get("/{id}", rt.shipmentHandler.GetByID)
				r.Put("/{id}", rt.shipmentHandler.Update)
				r.Delete("/{id}", rt.shipmentHandler.Delete)
				r.Get("/{id}/details", rt.shipmentHandler.ListDetails)
				r.Post("/{id}/details", rt.shipmentHandler.CreateDetail)
				r.Get("/{id}/details/{detailId}", rt.shipmentHandler.GetDetail)
				r.Put("/{id}/details/{detailId}", rt.shipmentHandler.UpdateDetail)
				r.Delete("/{id}/details/{detailId}", rt.shipmentHandler.DeleteDetail)
			})

			// Stock adjustments
			r.Route("/stock-adjustments", func(r chi.Router) {
				r.Get("/", rt.stockAdjustmentHandler.List)
				r.Post("/", rt.stockAdjustmentHandler.Create)
				r.Get("/search", rt.stockAdjustmentHandler.Search)
				r.Get("/{id}", rt.stockAdjustmentHandler.GetByID)
				r.Put("/{id}", rt.stockAdjustmentHandler.Update)
				r.Delete("/{id}", rt.stockAdjustmentHandler.Delete)
			})

			// Inventory transactions
			r.Route("/inventory-transactions", func(r chi.Router) {
				r.Get("/", rt.inventoryTransactionHandler.List)
				r.Post("/", rt.inventoryTransactionHandler.Create)
				r.Get("/search", rt.inventoryTransactionHandler.Search)
				r.Get("/{id}", rt.inventoryTransactionHandler.GetByID)
				r.Put("/{id}", rt.inventoryTransactionHandler.Update)
				r.Delete("/{id}", rt.inventoryTransactionHandler.Delete)
			})

			// Sales transactions
			r.Route("/sales-transactions", func(r chi.Router) {
				r.Get("/", rt.salesTransactionHandler.List)
				r.Post("/", rt.salesTransactionHandler.Create)
				r.Get("/search", rt.salesTransactionHandler.Search)
				r.Get("/{id}", rt.salesTransactionHandler.GetByID)
				r.Put("/{id}", rt.salesTransactionHandler.Update)
				r.Delete("/{id}", rt.salesTransactionHandler.Delete)
			})

			// Tasks
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", rt.taskHandler.List)
				r.Post("/", rt.taskHandler.Create)
				r.Get("/search", rt.taskHandler.Search)
				r.Get("/{id}", rt.taskHandler.GetByID)
				r.Put("/{id}", rt.taskHandler.Update)
				r.Delete("/{id}", rt.taskHandler.Delete)
			})

			// Events
			r.Route("/events", func(r chi.Router) {
				r.Get("/", rt.eventHandler.List)
				r.Post("/", rt.eventHandler.Create)
				r.Get("/search", rt.eventHandler.Search)
				r.Get("/{id}", rt.eventHandler.GetByID)
				r.Put("/{id}", rt.eventHandler.Update)
				r.Delete("/{id}", rt.eventHandler.Delete)
			})
		})
	})

	return r
}
