package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/http/handler"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createProductHandler(db *gorm.DB) *handler.ProductHandler {
	logger := zap.NewNop()
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	linkRepo := repository.NewProductSupplierRepository(db)

	productService := service.NewProductService(productRepo, logger)
	linkService := service.NewProductSupplierService(linkRepo, productRepo, supplierRepo, logger)

	return handler.NewProductHandler(productService, linkService, logger)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProductHandler_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", postJSON(t, domain.CreateProductRequest{
		Name:         "Conveyor Belt",
		Category:     "Equipment",
		UnitPrice:    decimal.NewFromFloat(1999.00),
		ReorderLevel: 1,
	}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Location"))

	var dto domain.ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "Conveyor Belt", dto.Name)
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", postJSON(t, domain.CreateProductRequest{
		UnitPrice: decimal.NewFromFloat(5.00),
	}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "name")
}

func TestProductHandler_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	testutil.CreateTestProduct(t, db, "Conveyor Belt")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", postJSON(t, domain.CreateProductRequest{
		Name:      "Conveyor Belt",
		UnitPrice: decimal.NewFromFloat(5.00),
	}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProductHandler_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	product := testutil.CreateTestProduct(t, db, "Conveyor Belt")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	req = withURLParam(req, "id", product.ID.String())
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dto domain.ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, product.ID, dto.ID)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil)
	req = withURLParam(req, "id", uuid.NewString())
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_GetByID_BadUUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	testutil.CreateTestProduct(t, db, "Steel Rack")
	testutil.CreateTestProduct(t, db, "Wooden Rack")
	testutil.CreateTestProduct(t, db, "Forklift")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/search?query=rack", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.PaginatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.Total)
}

func TestProductHandler_Search_EmptyQueryReturnsAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	testutil.CreateTestProduct(t, db, "Steel Rack")
	testutil.CreateTestProduct(t, db, "Wooden Rack")
	testutil.CreateTestProduct(t, db, "Forklift")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/search?query=", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.PaginatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(3), result.Total)
}

func TestProductHandler_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createProductHandler(db)

	product := testutil.CreateTestProduct(t, db, "Conveyor Belt")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+product.ID.String(), nil)
	req = withURLParam(req, "id", product.ID.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
