package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.customerService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list customers")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.customerService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search customers")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create customer")
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+customer.ID.String())
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete customer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
