package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// OrderHandler handles HTTP requests for purchase orders and their line items.
type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List returns a paginated list of orders. Searches match the order status.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.orderService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds orders whose status contains the query substring. An empty
// query returns the unfiltered listing.
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.orderService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create order")
		return
	}

	w.Header().Set("Location", "/api/v1/orders/"+order.ID.String())
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Cancel transitions an order to the cancelled status. Orders that have
// already shipped, been delivered or been cancelled are rejected with a
// conflict response.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Cancel(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "cancel order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDetails returns the line items of an order.
func (h *OrderHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	details, err := h.orderService.ListDetails(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list order details")
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// CreateDetail adds a line item to an order. The order ID comes from the
// URL path, overriding any value in the request body.
func (h *OrderHandler) CreateDetail(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.OrderID = orderID

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.orderService.CreateDetail(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create order detail")
		return
	}

	w.Header().Set("Location", "/api/v1/orders/"+orderID.String()+"/details/"+detail.ID.String())
	respondJSON(w, http.StatusCreated, detail)
}

func (h *OrderHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	detail, err := h.orderService.GetDetailByID(r.Context(), detailID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get order detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	var req domain.UpdateOrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.orderService.UpdateDetail(r.Context(), detailID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update order detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *OrderHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	if err := h.orderService.DeleteDetail(r.Context(), detailID); err != nil {
		respondServiceError(w, h.logger, err, "delete order detail")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
