package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// StockAdjustmentHandler handles HTTP requests for stock adjustments.
type StockAdjustmentHandler struct {
	stockAdjustmentService *service.StockAdjustmentService
	logger                 *zap.Logger
}

// NewStockAdjustmentHandler creates a new stock adjustment handler instance
func NewStockAdjustmentHandler(
	stockAdjustmentService *service.StockAdjustmentService,
	logger *zap.Logger,
) *StockAdjustmentHandler {
	return &StockAdjustmentHandler{
		stockAdjustmentService: stockAdjustmentService,
		logger:                 logger,
	}
}

// List returns a paginated list of stock adjustments. Searches match the reason.
func (h *StockAdjustmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.stockAdjustmentService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list stock adjustments")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds stock adjustments whose reason contains the query substring.
// An empty query returns the unfiltered listing.
func (h *StockAdjustmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.stockAdjustmentService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search stock adjustments")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *StockAdjustmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	adjustment, err := h.stockAdjustmentService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get stock adjustment")
		return
	}

	respondJSON(w, http.StatusOK, adjustment)
}

func (h *StockAdjustmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	adjustment, err := h.stockAdjustmentService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create stock adjustment")
		return
	}

	w.Header().Set("Location", "/api/v1/stock-adjustments/"+adjustment.ID.String())
	respondJSON(w, http.StatusCreated, adjustment)
}

func (h *StockAdjustmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateStockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	adjustment, err := h.stockAdjustmentService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update stock adjustment")
		return
	}

	respondJSON(w, http.StatusOK, adjustment)
}

func (h *StockAdjustmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.stockAdjustmentService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete stock adjustment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
