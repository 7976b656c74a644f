package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// SalesTransactionHandler handles HTTP requests for sales transactions.
type SalesTransactionHandler struct {
	salesTransactionService *service.SalesTransactionService
	logger                  *zap.Logger
}

// NewSalesTransactionHandler creates a new sales transaction handler instance
func NewSalesTransactionHandler(
	salesTransactionService *service.SalesTransactionService,
	logger *zap.Logger,
) *SalesTransactionHandler {
	return &SalesTransactionHandler{
		salesTransactionService: salesTransactionService,
		logger:                  logger,
	}
}

// List returns a paginated list of sales transactions. Searches match the status.
func (h *SalesTransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.salesTransactionService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list sales transactions")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds sales transactions whose status contains the query substring.
// An empty query returns the unfiltered listing.
func (h *SalesTransactionHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.salesTransactionService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search sales transactions")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *SalesTransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	txn, err := h.salesTransactionService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get sales transaction")
		return
	}

	respondJSON(w, http.StatusOK, txn)
}

func (h *SalesTransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSalesTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	txn, err := h.salesTransactionService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create sales transaction")
		return
	}

	w.Header().Set("Location", "/api/v1/sales-transactions/"+txn.ID.String())
	respondJSON(w, http.StatusCreated, txn)
}

func (h *SalesTransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateSalesTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	txn, err := h.salesTransactionService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update sales transaction")
		return
	}

	respondJSON(w, http.StatusOK, txn)
}

func (h *SalesTransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.salesTransactionService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete sales transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
