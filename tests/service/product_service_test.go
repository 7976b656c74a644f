package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createProductService(db *gorm.DB) *service.ProductService {
	return service.NewProductService(repository.NewProductRepository(db), zap.NewNop())
}

func TestProductService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	dto, err := svc.Create(context.Background(), &domain.CreateProductRequest{
		Name:         "Barcode Scanner",
		Description:  "Handheld 2D scanner",
		Category:     "Electronics",
		UnitPrice:    decimal.NewFromFloat(129.00),
		ReorderLevel: 10,
	})

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Equal(t, "Barcode Scanner", dto.Name)
	assert.Equal(t, 10, dto.ReorderLevel)
	assert.True(t, dto.UnitPrice.Equal(decimal.NewFromFloat(129.00)))
}

func TestProductService_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	testutil.CreateTestProduct(t, db, "Barcode Scanner")

	_, err := svc.Create(context.Background(), &domain.CreateProductRequest{
		Name:      "Barcode Scanner",
		UnitPrice: decimal.NewFromFloat(99.00),
	})

	assert.ErrorIs(t, err, service.ErrDuplicateProductName)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestProductService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	product := testutil.CreateTestProduct(t, db, "Old Name")

	dto, err := svc.Update(context.Background(), product.ID, &domain.UpdateProductRequest{
		Name:         "New Name",
		Category:     "Updated",
		UnitPrice:    decimal.NewFromFloat(15.00),
		ReorderLevel: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", dto.Name)
	assert.Equal(t, "Updated", dto.Category)
}

func TestProductService_Update_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	testutil.CreateTestProduct(t, db, "Taken Name")
	product := testutil.CreateTestProduct(t, db, "Original Name")

	_, err := svc.Update(context.Background(), product.ID, &domain.UpdateProductRequest{
		Name:      "Taken Name",
		UnitPrice: decimal.NewFromFloat(5.00),
	})

	assert.ErrorIs(t, err, service.ErrDuplicateProductName)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestProductService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	testutil.CreateTestProduct(t, db, "Label Printer")
	testutil.CreateTestProduct(t, db, "Label Roll")
	testutil.CreateTestProduct(t, db, "Packing Tape")

	result, err := svc.List(context.Background(), 1, 20, "label", repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.Page)

	all, err := svc.List(context.Background(), 1, 20, "", repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Equal(t, 1, all.TotalPages)
}

func TestProductService_List_SortByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createProductService(db)

	testutil.CreateTestProduct(t, db, "Zebra Printer")
	testutil.CreateTestProduct(t, db, "Air Compressor")
	testutil.CreateTestProduct(t, db, "Mop Bucket")

	result, err := svc.List(context.Background(), 1, 20, "", repository.SortConfig{
		Field: "name",
		Order: repository.SortOrderAsc,
	})
	require.NoError(t, err)

	products, ok := result.Data.([]domain.ProductDTO)
	require.True(t, ok)
	require.Len(t, products, 3)
	assert.Equal(t, "Air Compressor", products[0].Name)
	assert.Equal(t, "Mop Bucket", products[1].Name)
	assert.Equal(t, "Zebra Printer", products[2].Name)
}
