package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)

	order := testutil.CreateTestOrder(t, db, domain.OrderStatusPending)

	err := repo.UpdateStatus(context.Background(), order.ID, domain.OrderStatusShipped)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
}

func TestOrderRepository_Details(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)

	order := testutil.CreateTestOrder(t, db, domain.OrderStatusPending)
	product := testutil.CreateTestProduct(t, db, "Hand Truck")

	detail := &domain.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  4,
		UnitPrice: decimal.NewFromFloat(59.90),
	}
	require.NoError(t, repo.CreateDetail(context.Background(), detail))

	details, err := repo.ListDetailsByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, product.ID, details[0].ProductID)

	detail.Quantity = 6
	require.NoError(t, repo.UpdateDetail(context.Background(), detail))

	got, err := repo.GetDetailByID(context.Background(), detail.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6, got.Quantity)

	require.NoError(t, repo.DeleteDetail(context.Background(), detail.ID))
	gone, err := repo.GetDetailByID(context.Background(), detail.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, gone)
}
