package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// AuditConfig holds configuration for the audit middleware
type AuditConfig struct {
	// SkipPaths contains path prefixes that are never audited
	SkipPaths []string
	// SkipMethods contains HTTP methods that are never audited
	SkipMethods []string
	// AuditReads enables auditing of GET requests (off by default)
	AuditReads bool
}

// DefaultAuditConfig returns the default audit configuration
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		SkipPaths: []string{
			"/health",
			"/health/db",
			"/health/ready",
		},
		SkipMethods: []string{
			http.MethodOptions,
			http.MethodHead,
		},
		AuditReads: false,
	}
}

// AuditMiddleware records successful modifying requests to the audit trail
type AuditMiddleware struct {
	auditService *service.AuditLogService
	config       *AuditConfig
	logger       *zap.Logger
}

// NewAuditMiddleware creates a new audit middleware instance. A nil config
// falls back to DefaultAuditConfig.
func NewAuditMiddleware(auditService *service.AuditLogService, config *AuditConfig, logger *zap.Logger) *AuditMiddleware {
	if config == nil {
		config = DefaultAuditConfig()
	}
	return &AuditMiddleware{
		auditService: auditService,
		config:       config,
		logger:       logger,
	}
}

// Audit returns middleware that logs modifications to the audit trail
func (m *AuditMiddleware) Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.shouldAudit(r) {
			next.ServeHTTP(w, r)
			return
		}

		// Capture the request body so the handler can still read it
		var requestBody []byte
		if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		rw := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		// Recording must not delay the response. The context is detached
		// because the request context is cancelled once the handler returns.
		go m.logAudit(context.WithoutCancel(r.Context()), r, rw.statusCode, requestBody)
	})
}

// shouldAudit determines whether a request is subject to auditing
func (m *AuditMiddleware) shouldAudit(r *http.Request) bool {
	for _, method := range m.config.SkipMethods {
		if r.Method == method {
			return false
		}
	}

	if r.Method == http.MethodGet && !m.config.AuditReads {
		return false
	}

	path := r.URL.Path
	for _, skipPath := range m.config.SkipPaths {
		if strings.HasPrefix(path, skipPath) {
			return false
		}
	}

	return true
}

// logAudit records one audit trail entry for a completed request
func (m *AuditMiddleware) logAudit(ctx context.Context, r *http.Request, statusCode int, requestBody []byte) {
	if m.auditService == nil {
		return
	}

	// Only successful modifications are recorded
	if statusCode < 200 || statusCode >= 300 {
		return
	}

	action := m.methodToAction(r.Method)
	if action == "" {
		return
	}

	entityType, entityID := m.extractEntityInfo(r)

	var values interface{}
	if len(requestBody) > 0 {
		var parsed map[string]interface{}
		if json.Unmarshal(requestBody, &parsed) == nil {
			delete(parsed, "password")
			delete(parsed, "secret")
			delete(parsed, "token")
			values = parsed
		}
	}

	entry := service.LogEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		NewValues:  values,
	}

	if err := m.auditService.Log(ctx, r, entry); err != nil {
		m.logger.Warn("failed to record audit trail entry",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
	}
}

// methodToAction maps an HTTP method to the audit action it represents
func (m *AuditMiddleware) methodToAction(method string) domain.AuditAction {
	switch method {
	case http.MethodPost:
		return domain.AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return domain.AuditActionUpdate
	case http.MethodDelete:
		return domain.AuditActionDelete
	default:
		return ""
	}
}

// extractEntityInfo derives the entity type and ID from the matched route
func (m *AuditMiddleware) extractEntityInfo(r *http.Request) (string, *uuid.UUID) {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		return m.parseEntityFromPath(r.URL.Path), nil
	}

	var entityID *uuid.UUID
	if idStr := routeCtx.URLParam("id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			entityID = &id
		}
	}

	entityType := m.parseEntityFromPath(routeCtx.RoutePattern())

	return entityType, entityID
}

// parseEntityFromPath maps a URL path segment to its entity type
func (m *AuditMiddleware) parseEntityFromPath(path string) string {
	entityMap := map[string]string{
		"products":               "Product",
		"suppliers":              "Supplier",
		"customers":              "Customer",
		"warehouses":             "Warehouse",
		"product-suppliers":      "ProductSupplier",
		"inventory":              "Inventory",
		"orders":                 "Order",
		"customer-orders":        "CustomerOrder",
		"shipments":              "Shipment",
		"stock-adjustments":      "StockAdjustment",
		"inventory-transactions": "InventoryTransaction",
		"sales-transactions":     "SalesTransaction",
		"tasks":                  "Task",
		"events":                 "Event",
		"users":                  "User",
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, part := range parts {
		if entityType, ok := entityMap[part]; ok {
			return entityType
		}
	}

	return "Unknown"
}

// responseCapture wraps ResponseWriter to capture the status code
type responseCapture struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseCapture) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
