package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// EventHandler handles HTTP requests for events.
type EventHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(eventService *service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns a paginated list of events. Searches match the event name.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.eventService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "list events")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Search finds events whose name contains the query substring. An empty
// query returns the unfiltered listing.
func (h *EventHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.eventService.List(r.Context(), page, pageSize, r.URL.Query().Get("query"), parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "search events")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get event")
		return
	}

	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create event")
		return
	}

	w.Header().Set("Location", "/api/v1/events/"+event.ID.String())
	respondJSON(w, http.StatusCreated, event)
}

// Update replaces the event fields and its participant list.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	event, err := h.eventService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update event")
		return
	}

	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
