package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/service"
)

// AuthHandler handles registration, login and the current-user endpoint.
type AuthHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *service.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register creates a new user account. The password is hashed before storage
// and never appears in any response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "register user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login authenticates a user by username and password and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.userService.Authenticate(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "log in")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userCtx.UserID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get current user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
