package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// CustomerOrderHandler handles HTTP requests for customer orders and their line items.
type CustomerOrderHandler struct {
	customerOrderService *service.CustomerOrderService
	logger               *zap.Logger
}

// NewCustomerOrderHandler creates a new customer order handler instance
func NewCustomerOrderHandler(
	customerOrderService *service.CustomerOrderService,
	logger *zap.Logger,
) *CustomerOrderHandler {
	return &CustomerOrderHandler{
		customerOrderService: customerOrderService,
		logger:               logger,
	}
}

func (h *CustomerOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.customerOrderService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list customer orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds customer orders whose status contains the query substring.
// An empty query returns the unfiltered listing.
func (h *CustomerOrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.customerOrderService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search customer orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *CustomerOrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.customerOrderService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get customer order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *CustomerOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.customerOrderService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create customer order")
		return
	}

	w.Header().Set("Location", "/api/v1/customer-orders/"+order.ID.String())
	respondJSON(w, http.StatusCreated, order)
}

func (h *CustomerOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateCustomerOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.customerOrderService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update customer order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *CustomerOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.customerOrderService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete customer order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDetails returns the line items of a customer order.
func (h *CustomerOrderHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	details, err := h.customerOrderService.ListDetails(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list customer order details")
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// CreateDetail adds a line item to a customer order. The order ID comes
// from the URL path, overriding any value in the request body.
func (h *CustomerOrderHandler) CreateDetail(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateCustomerOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.CustomerOrderID = orderID

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.customerOrderService.CreateDetail(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create customer order detail")
		return
	}

	w.Header().Set("Location", "/api/v1/customer-orders/"+orderID.String()+"/details/"+detail.ID.String())
	respondJSON(w, http.StatusCreated, detail)
}

func (h *CustomerOrderHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	detail, err := h.customerOrderService.GetDetailByID(r.Context(), detailID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get customer order detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *CustomerOrderHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	var req domain.UpdateCustomerOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.customerOrderService.UpdateDetail(r.Context(), detailID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update customer order detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *CustomerOrderHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	if err := h.customerOrderService.DeleteDetail(r.Context(), detailID); err != nil {
		respondServiceError(w, h.logger, err, "delete customer order detail")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
