package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func TestInventoryRepository_GetByProductWarehouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInventoryRepository(db)

	product := testutil.CreateTestProduct(t, db, "Wooden Pallet")
	warehouse := testutil.CreateTestWarehouse(t, db, "Central Warehouse")

	inv := &domain.Inventory{
		ProductID:   product.ID,
		WarehouseID: warehouse.ID,
		Quantity:    120,
		LastUpdated: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), inv))

	got, err := repo.GetByProductWarehouse(context.Background(), product.ID, warehouse.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, 120, got.Quantity)

	missing, err := repo.GetByProductWarehouse(context.Background(), product.ID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInventoryRepository_ListByWarehouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInventoryRepository(db)

	first := testutil.CreateTestProduct(t, db, "Product One")
	second := testutil.CreateTestProduct(t, db, "Product Two")
	warehouse := testutil.CreateTestWarehouse(t, db, "North Warehouse")
	other := testutil.CreateTestWarehouse(t, db, "South Warehouse")

	for _, row := range []*domain.Inventory{
		{ProductID: first.ID, WarehouseID: warehouse.ID, Quantity: 10, LastUpdated: time.Now().UTC()},
		{ProductID: second.ID, WarehouseID: warehouse.ID, Quantity: 20, LastUpdated: time.Now().UTC()},
		{ProductID: first.ID, WarehouseID: other.ID, Quantity: 30, LastUpdated: time.Now().UTC()},
	} {
		require.NoError(t, repo.Create(context.Background(), row))
	}

	rows, err := repo.ListByWarehouse(context.Background(), warehouse.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, warehouse.ID, row.WarehouseID)
	}
}

func TestInventoryRepository_DuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInventoryRepository(db)

	product := testutil.CreateTestProduct(t, db, "Cardboard Box")
	warehouse := testutil.CreateTestWarehouse(t, db, "East Warehouse")

	inv := &domain.Inventory{ProductID: product.ID, WarehouseID: warehouse.ID, Quantity: 5, LastUpdated: time.Now().UTC()}
	require.NoError(t, repo.Create(context.Background(), inv))

	dup := &domain.Inventory{ProductID: product.ID, WarehouseID: warehouse.ID, Quantity: 7, LastUpdated: time.Now().UTC()}
	err := repo.Create(context.Background(), dup)
	assert.Error(t, err)
}
