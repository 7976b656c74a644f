package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stockflow/inventory-api/internal/database"
	"github.com/stockflow/inventory-api/internal/domain"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. Each test gets its own database, so no cleanup between
// tests is needed.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DSN keeps the database alive across the pooled
	// connections gorm opens.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, database.AutoMigrate(db), "failed to migrate test database")

	return db
}

// CreateTestUser inserts a user with the given username and role.
func CreateTestUser(t *testing.T, db *gorm.DB, username string, role domain.UserRole) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestProduct inserts a product with the given name.
func CreateTestProduct(t *testing.T, db *gorm.DB, name string) *domain.Product {
	t.Helper()

	product := &domain.Product{
		Name:         name,
		Description:  "test product",
		Category:     "Test",
		UnitPrice:    decimal.NewFromFloat(9.99),
		ReorderLevel: 5,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// CreateTestSupplier inserts a supplier with the given name.
func CreateTestSupplier(t *testing.T, db *gorm.DB, name string) *domain.Supplier {
	t.Helper()

	supplier := &domain.Supplier{
		Name:        name,
		ContactName: "Jane Doe",
		City:        "Oslo",
		Country:     "Norway",
		Phone:       "12345678",
	}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

// CreateTestCustomer inserts a customer with the given name.
func CreateTestCustomer(t *testing.T, db *gorm.DB, name string) *domain.Customer {
	t.Helper()

	customer := &domain.Customer{
		Name:        name,
		ContactName: "John Doe",
		City:        "Bergen",
		Country:     "Norway",
		Phone:       "87654321",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// CreateTestWarehouse inserts a warehouse with the given name.
func CreateTestWarehouse(t *testing.T, db *gorm.DB, name string) *domain.Warehouse {
	t.Helper()

	warehouse := &domain.Warehouse{
		Name:     name,
		Location: "Industrivegen 1",
	}
	require.NoError(t, db.Create(warehouse).Error)
	return warehouse
}

// CreateTestOrder inserts an order with the given status.
func CreateTestOrder(t *testing.T, db *gorm.DB, status domain.OrderStatus) *domain.Order {
	t.Helper()

	order := &domain.Order{
		OrderDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
