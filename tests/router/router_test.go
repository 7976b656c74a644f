package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/config"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/http/handler"
	"github.com/stockflow/inventory-api/internal/http/middleware"
	"github.com/stockflow/inventory-api/internal/http/router"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

// setupRouter wires the full HTTP stack against an in-memory database, the
// same way cmd/api does it.
func setupRouter(t *testing.T) (http.Handler, *gorm.DB, *auth.TokenManager) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	cfg := &config.Config{}
	cfg.App.Name = "inventory-api"
	cfg.App.Environment = "test"

	hasher := auth.NewPasswordHasher(4)
	tokens := auth.NewTokenManager("test-secret", cfg.App.Name, time.Hour)

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

	rt := router.NewRouter(
		cfg,
		log,
		db,
		auth.NewMiddleware(tokens, log),
		middleware.NewAuditMiddleware(auditService, middleware.DefaultAuditConfig(), log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewAuthHandler(userService, log),
		handler.NewUserHandler(userService, log),
		handler.NewProductHandler(productService, productSupplierService, log),
		handler.NewSupplierHandler(supplierService, log),
		handler.NewCustomerHandler(customerService, log),
		handler.NewWarehouseHandler(warehouseService, log),
		handler.NewProductSupplierHandler(productSupplierService, log),
		handler.NewInventoryHandler(inventoryService, log),
		handler.NewOrderHandler(orderService, log),
		handler.NewCustomerOrderHandler(customerOrderService, log),
		handler.NewShipmentHandler(shipmentService, log),
		handler.NewStockAdjustmentHandler(stockAdjustmentService, log),
		handler.NewInventoryTransactionHandler(inventoryTransactionService, log),
		handler.NewSalesTransactionHandler(salesTransactionService, log),
		handler.NewTaskHandler(taskService, log),
		handler.NewEventHandler(eventService, log),
		handler.NewAuditLogHandler(auditService, log),
	)

	return rt.Setup(), db, tokens
}

func issueToken(t *testing.T, tokens *auth.TokenManager, user *domain.User) string {
	t.Helper()
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func TestRouter_UserRoutesRequireAdministrator(t *testing.T) {
	srv, db, tokens := setupRouter(t)

	admin := testutil.CreateTestUser(t, db, "admin", domain.RoleAdministrator)
	standard := testutil.CreateTestUser(t, db, "jdoe", domain.RoleStandardUser)
	standardToken := issueToken(t, tokens, standard)

	t.Run("standard user cannot list users", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("Authorization", "Bearer "+standardToken)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("standard user cannot delete another account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+admin.ID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+standardToken)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var count int64
		require.NoError(t, db.Model(&domain.User{}).Where("id = ?", admin.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "admin account must remain")
	})

	t.Run("administrator can manage users", func(t *testing.T) {
		adminToken := issueToken(t, tokens, admin)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+standard.ID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec = httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouter_SearchRoutesRegistered(t *testing.T) {
	srv, db, tokens := setupRouter(t)

	user := testutil.CreateTestUser(t, db, "searcher", domain.RoleStandardUser)
	token := issueToken(t, tokens, user)

	paths := []string{
		"/api/v1/products/search",
		"/api/v1/suppliers/search",
		"/api/v1/customers/search",
		"/api/v1/warehouses/search",
		"/api/v1/inventory/search",
		"/api/v1/orders/search",
		"/api/v1/customer-orders/search",
		"/api/v1/shipments/search",
		"/api/v1/stock-adjustments/search",
		"/api/v1/inventory-transactions/search",
		"/api/v1/sales-transactions/search",
		"/api/v1/tasks/search",
		"/api/v1/events/search",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path+"?query=steel", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "expected %s to be routed", path)
	}
}

func TestRouter_AuditLogRoutesRequireAdministrator(t *testing.T) {
	srv, db, tokens := setupRouter(t)

	standard := testutil.CreateTestUser(t, db, "jdoe", domain.RoleStandardUser)
	admin := testutil.CreateTestUser(t, db, "admin", domain.RoleAdministrator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, standard))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, admin))
	rec = httptest.NewRecorder()

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
