package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// InventoryHandler handles HTTP requests for inventory records.
type InventoryHandler struct {
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

// NewInventoryHandler creates a new inventory handler instance
func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// List returns a paginated list of inventory records. Searches match the
// linked product name.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.inventoryService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list inventory")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds inventory records whose product name contains the query
// substring. An empty query returns the unfiltered listing.
func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.inventoryService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search inventory")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *InventoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	record, err := h.inventoryService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get inventory record")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	record, err := h.inventoryService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create inventory record")
		return
	}

	w.Header().Set("Location", "/api/v1/inventory/"+record.ID.String())
	respondJSON(w, http.StatusCreated, record)
}

// Update changes the quantity of an inventory record and refreshes its
// last-updated timestamp.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	record, err := h.inventoryService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update inventory record")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete inventory record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
