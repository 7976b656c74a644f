package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	fieldErrors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fieldErrors[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	respondJSON(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fieldErrors,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("Must be a date in %s format", fe.Param())
	case "gtfield":
		return fmt.Sprintf("Must be after %s", toJSONFieldName(fe.Param()))
	case "url":
		return "Must be a valid URL"
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// parsePagination extracts page and pageSize query parameters with defaults.
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// parseSort reads the sortBy and sortOrder query parameters. Unknown fields
// fall back to each repository's default ordering.
func parseSort(r *http.Request) repository.SortConfig {
	field := r.URL.Query().Get("sortBy")
	if field == "" {
		return repository.DefaultSortConfig()
	}
	return repository.SortConfig{
		Field: field,
		Order: repository.ParseSortOrder(r.URL.Query().Get("sortOrder")),
	}
}

// parseIDParam parses a UUID path parameter, writing a 400 response on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", name))
		return uuid.Nil, false
	}
	return id, true
}

var notFoundErrors = []error{
	service.ErrProductNotFound,
	service.ErrSupplierNotFound,
	service.ErrCustomerNotFound,
	service.ErrWarehouseNotFound,
	service.ErrProductSupplierNotFound,
	service.ErrInventoryNotFound,
	service.ErrOrderNotFound,
	service.ErrOrderDetailNotFound,
	service.ErrCustomerOrderNotFound,
	service.ErrCustomerOrderDetailNotFound,
	service.ErrShipmentNotFound,
	service.ErrShipmentDetailNotFound,
	service.ErrStockAdjustmentNotFound,
	service.ErrInventoryTransactionNotFound,
	service.ErrSalesTransactionNotFound,
	service.ErrTaskNotFound,
	service.ErrEventNotFound,
	service.ErrEventParticipantNotFound,
	service.ErrUserNotFound,
	service.ErrAuditLogNotFound,
	service.ErrNotFound,
}

var conflictErrors = []error{
	service.ErrDuplicateProductName,
	service.ErrDuplicateSupplierName,
	service.ErrDuplicateCustomerName,
	service.ErrDuplicateWarehouseName,
	service.ErrDuplicateProductSupplier,
	service.ErrDuplicateInventory,
	service.ErrDuplicateUsername,
	service.ErrDuplicateEmail,
	service.ErrOrderNotCancellable,
	service.ErrConflict,
}

var badRequestErrors = []error{
	service.ErrInvalidOrderStatus,
	service.ErrInvalidCustomerOrderStatus,
	service.ErrInvalidShipmentStatus,
	service.ErrInvalidTransactionType,
	service.ErrInvalidUserRole,
	service.ErrInvalidInput,
}

// respondServiceError maps service sentinel errors to HTTP status codes.
// Unrecognized errors are logged and reported as 500 with a generic message
// so internal details never leak to the client.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUnauthorized) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	logger.Error("request failed", zap.String("action", action), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "Failed to "+action)
}
