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

func createSupplierService(db *gorm.DB) *service.SupplierService {
	return service.NewSupplierService(repository.NewSupplierRepository(db), zap.NewNop())
}

func TestSupplierService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createSupplierService(db)

	dto, err := svc.Create(context.Background(), &domain.CreateSupplierRequest{
		Name:        "Nordic Logistics AS",
		ContactName: "Kari Nordmann",
		City:        "Trondheim",
		Country:     "Norway",
		Phone:       "73500000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Nordic Logistics AS", dto.Name)
	assert.Equal(t, "Kari Nordmann", dto.ContactName)
}

func TestSupplierService_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createSupplierService(db)

	testutil.CreateTestSupplier(t, db, "Nordic Logistics AS")

	_, err := svc.Create(context.Background(), &domain.CreateSupplierRequest{
		Name: "Nordic Logistics AS",
	})

	assert.ErrorIs(t, err, service.ErrDuplicateSupplierName)
}

func TestSupplierService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createSupplierService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)
}

func TestSupplierService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createSupplierService(db)

	supplier := testutil.CreateTestSupplier(t, db, "Short Lived AS")

	require.NoError(t, svc.Delete(context.Background(), supplier.ID))

	_, err := svc.GetByID(context.Background(), supplier.ID)
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)
}
