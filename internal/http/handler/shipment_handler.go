package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// ShipmentHandler handles HTTP requests for shipments and their line items.
type ShipmentHandler struct {
	shipmentService *service.ShipmentService
	logger          *zap.Logger
}

// NewShipmentHandler creates a new shipment handler instance
func NewShipmentHandler(shipmentService *service.ShipmentService, logger *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentService: shipmentService,
		logger:          logger,
	}
}

// List returns a paginated list of shipments. Searches match the tracking number.
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.shipmentService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list shipments")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds shipments whose tracking number contains the query substring.
// An empty query returns the unfiltered listing.
func (h *ShipmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.shipmentService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search shipments")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ShipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	shipment, err := h.shipmentService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get shipment")
		return
	}

	respondJSON(w, http.StatusOK, shipment)
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	shipment, err := h.shipmentService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create shipment")
		return
	}

	w.Header().Set("Location", "/api/v1/shipments/"+shipment.ID.String())
	respondJSON(w, http.StatusCreated, shipment)
}

func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	shipment, err := h.shipmentService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update shipment")
		return
	}

	respondJSON(w, http.StatusOK, shipment)
}

func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.shipmentService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete shipment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDetails returns the line items of a shipment.
func (h *ShipmentHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	shipmentID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	details, err := h.shipmentService.ListDetails(r.Context(), shipmentID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list shipment details")
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// CreateDetail adds a line item to a shipment. The shipment ID comes from
// the URL path, overriding any value in the request body.
func (h *ShipmentHandler) CreateDetail(w http.ResponseWriter, r *http.Request) {
	shipmentID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.CreateShipmentDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ShipmentID = shipmentID

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.shipmentService.CreateDetail(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create shipment detail")
		return
	}

	w.Header().Set("Location", "/api/v1/shipments/"+shipmentID.String()+"/details/"+detail.ID.String())
	respondJSON(w, http.StatusCreated, detail)
}

func (h *ShipmentHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	detail, err := h.shipmentService.GetDetailByID(r.Context(), detailID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get shipment detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *ShipmentHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	var req domain.UpdateShipmentDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	detail, err := h.shipmentService.UpdateDetail(r.Context(), detailID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update shipment detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (h *ShipmentHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	detailID, ok := parseIDParam(w, r, "detailId")
	if !ok {
		return
	}

	if err := h.shipmentService.DeleteDetail(r.Context(), detailID); err != nil {
		respondServiceError(w, h.logger, err, "delete shipment detail")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
