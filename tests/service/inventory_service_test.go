package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createInventoryService(db *gorm.DB) *service.InventoryService {
	return service.NewInventoryService(
		repository.NewInventoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewWarehouseRepository(db),
		zap.NewNop(),
	)
}

func TestInventoryService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	product := testutil.CreateTestProduct(t, db, "Stretch Film")
	warehouse := testutil.CreateTestWarehouse(t, db, "Main Warehouse")

	dto, err := svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    250,
	})

	require.NoError(t, err)
	assert.Equal(t, product.ID, dto.ProductID)
	assert.Equal(t, warehouse.ID, dto.WarehouseID)
	assert.Equal(t, 250, dto.Quantity)
	assert.Equal(t, "Stretch Film", dto.ProductName)
	assert.Equal(t, "Main Warehouse", dto.WarehouseName)
}

func TestInventoryService_Create_UnknownProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	warehouse := testutil.CreateTestWarehouse(t, db, "Main Warehouse")

	_, err := svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   uuid.New(),
		WarehouseID: warehouse.ID,
		Quantity:    1,
	})

	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestInventoryService_Create_UnknownWarehouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	product := testutil.CreateTestProduct(t, db, "Stretch Film")

	_, err := svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: uuid.New(),
		Quantity:    1,
	})

	assert.ErrorIs(t, err, service.ErrWarehouseNotFound)
}

func TestInventoryService_Create_DuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	product := testutil.CreateTestProduct(t, db, "Stretch Film")
	warehouse := testutil.CreateTestWarehouse(t, db, "Main Warehouse")

	_, err := svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    10,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    20,
	})
	assert.ErrorIs(t, err, service.ErrDuplicateInventory)
}

func TestInventoryService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	product := testutil.CreateTestProduct(t, db, "Stretch Film")
	warehouse := testutil.CreateTestWarehouse(t, db, "Main Warehouse")

	created, err := svc.Create(context.Background(), &domain.CreateInventoryRequest{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    10,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateInventoryRequest{Quantity: 35})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Quantity)
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createInventoryService(db)

	_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateInventoryRequest{Quantity: 1})
	assert.ErrorIs(t, err, service.ErrInventoryNotFound)
}
