package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// ProductSupplierHandler handles HTTP requests for product-supplier links.
type ProductSupplierHandler struct {
	productSupplierService *service.ProductSupplierService
	logger                 *zap.Logger
}

// NewProductSupplierHandler creates a new product-supplier handler instance
func NewProductSupplierHandler(
	productSupplierService *service.ProductSupplierService,
	logger *zap.Logger,
) *ProductSupplierHandler {
	return &ProductSupplierHandler{
		productSupplierService: productSupplierService,
		logger:                 logger,
	}
}

func (h *ProductSupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.productSupplierService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list product suppliers")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ProductSupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	link, err := h.productSupplierService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get product supplier")
		return
	}

	respondJSON(w, http.StatusOK, link)
}

func (h *ProductSupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	link, err := h.productSupplierService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create product supplier")
		return
	}

	w.Header().Set("Location", "/api/v1/product-suppliers/"+link.ID.String())
	respondJSON(w, http.StatusCreated, link)
}

func (h *ProductSupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateProductSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	link, err := h.productSupplierService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update product supplier")
		return
	}

	respondJSON(w, http.StatusOK, link)
}

func (h *ProductSupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.productSupplierService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete product supplier")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
