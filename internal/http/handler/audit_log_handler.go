package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// defaultEntityTrailLimit caps how many entries the per-entity trail returns
const defaultEntityTrailLimit = 50

// AuditLogHandler handles HTTP requests for the audit trail
type AuditLogHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

// NewAuditLogHandler creates a new audit log handler instance
func NewAuditLogHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// List returns a paginated view of the audit trail, newest first. Entries can
// be narrowed by action, entityType, entityId and userId query parameters.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	var params service.AuditLogQueryParams
	query := r.URL.Query()

	if action := query.Get("action"); action != "" {
		a := domain.AuditAction(action)
		params.Action = &a
	}
	params.EntityType = query.Get("entityType")
	if idStr := query.Get("entityId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid entityId format")
			return
		}
		params.EntityID = &id
	}
	if idStr := query.Get("userId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid userId format")
			return
		}
		params.UserID = &id
	}

	result, err := h.auditService.List(r.Context(), page, pageSize, params)
	if err != nil {
		respondServiceError(w, h.logger, err, "list audit log entries")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *AuditLogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.auditService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get audit log entry")
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// ListByEntity returns the recent audit trail of a single entity
func (h *AuditLogHandler) ListByEntity(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID, ok := parseIDParam(w, r, "entityId")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > defaultEntityTrailLimit {
		limit = defaultEntityTrailLimit
	}

	entries, err := h.auditService.GetByEntity(r.Context(), entityType, entityID, limit)
	if err != nil {
		respondServiceError(w, h.logger, err, "list entity audit trail")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
