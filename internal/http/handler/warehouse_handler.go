package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// WarehouseHandler handles HTTP requests for warehouse operations
type WarehouseHandler struct {
	warehouseService *service.WarehouseService
	logger           *zap.Logger
}

// NewWarehouseHandler creates a new warehouse handler instance
func NewWarehouseHandler(warehouseService *service.WarehouseService, logger *zap.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseService: warehouseService,
		logger:           logger,
	}
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.warehouseService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list warehouses")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *WarehouseHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.warehouseService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search warehouses")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *WarehouseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get warehouse")
		return
	}

	respondJSON(w, http.StatusOK, warehouse)
}

func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	warehouse, err := h.warehouseService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create warehouse")
		return
	}

	w.Header().Set("Location", "/api/v1/warehouses/"+warehouse.ID.String())
	respondJSON(w, http.StatusCreated, warehouse)
}

func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	warehouse, err := h.warehouseService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update warehouse")
		return
	}

	respondJSON(w, http.StatusOK, warehouse)
}

func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.warehouseService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete warehouse")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListInventory returns all inventory records held at a warehouse.
func (h *WarehouseHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	records, err := h.warehouseService.ListInventory(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "list warehouse inventory")
		return
	}

	respondJSON(w, http.StatusOK, records)
}
