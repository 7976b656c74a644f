package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// InventoryTransactionHandler handles HTTP requests for inventory movements.
type InventoryTransactionHandler struct {
	inventoryTransactionService *service.InventoryTransactionService
	logger                      *zap.Logger
}

// NewInventoryTransactionHandler creates a new inventory transaction handler instance
func NewInventoryTransactionHandler(
	inventoryTransactionService *service.InventoryTransactionService,
	logger *zap.Logger,
) *InventoryTransactionHandler {
	return &InventoryTransactionHandler{
		inventoryTransactionService: inventoryTransactionService,
		logger:                      logger,
	}
}

// List returns a paginated list of transactions. Searches match the
// transaction type (IN or OUT).
func (h *InventoryTransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.inventoryTransactionService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list inventory transactions")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds inventory transactions whose type contains the query
// substring. An empty query returns the unfiltered listing.
func (h *InventoryTransactionHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.inventoryTransactionService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search inventory transactions")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *InventoryTransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	txn, err := h.inventoryTransactionService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get inventory transaction")
		return
	}

	respondJSON(w, http.StatusOK, txn)
}

func (h *InventoryTransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInventoryTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	txn, err := h.inventoryTransactionService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create inventory transaction")
		return
	}

	w.Header().Set("Location", "/api/v1/inventory-transactions/"+txn.ID.String())
	respondJSON(w, http.StatusCreated, txn)
}

func (h *InventoryTransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateInventoryTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	txn, err := h.inventoryTransactionService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update inventory transaction")
		return
	}

	respondJSON(w, http.StatusOK, txn)
}

func (h *InventoryTransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.inventoryTransactionService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete inventory transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
