package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/http/handler"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createAuthHandler(db *gorm.DB) *handler.AuthHandler {
	logger := zap.NewNop()
	userService := service.NewUserService(
		repository.NewUserRepository(db),
		auth.NewPasswordHasher(4),
		auth.NewTokenManager("test-secret", "inventory-api", time.Hour),
		logger,
	)
	return handler.NewAuthHandler(userService, logger)
}

func postJSON(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestAuthHandler_Register(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, domain.RegisterRequest{
		Username:  "jsmith",
		Email:     "jsmith@example.com",
		FirstName: "John",
		LastName:  "Smith",
		Password:  "secret-password",
	}))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var dto domain.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "jsmith", dto.Username)
	assert.Equal(t, domain.RoleStandardUser, dto.Role)
	assert.NotContains(t, rec.Body.String(), "secret-password")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, domain.RegisterRequest{
		Username: "jsmith",
		Email:    "not-an-email",
		Password: "short",
	}))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "email")
	assert.Contains(t, apiErr.Errors, "password")
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	body := domain.RegisterRequest{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "secret-password",
	}

	first := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, body))
	rec := httptest.NewRecorder()
	h.Register(rec, first)
	require.Equal(t, http.StatusCreated, rec.Code)

	body.Email = "other@example.com"
	second := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, body))
	rec = httptest.NewRecorder()
	h.Register(rec, second)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	register := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, domain.RegisterRequest{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "secret-password",
	}))
	rec := httptest.NewRecorder()
	h.Register(rec, register)
	require.Equal(t, http.StatusCreated, rec.Code)

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", postJSON(t, domain.LoginRequest{
		Username: "jsmith",
		Password: "secret-password",
	}))
	rec = httptest.NewRecorder()
	h.Login(rec, login)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jsmith", resp.User.Username)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	register := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", postJSON(t, domain.RegisterRequest{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "secret-password",
	}))
	rec := httptest.NewRecorder()
	h.Register(rec, register)
	require.Equal(t, http.StatusCreated, rec.Code)

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", postJSON(t, domain.LoginRequest{
		Username: "jsmith",
		Password: "wrong-password",
	}))
	rec = httptest.NewRecorder()
	h.Login(rec, login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	user := testutil.CreateTestUser(t, db, "jsmith", domain.RoleStandardUser)

	userCtx := &auth.UserContext{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(auth.WithUserContext(req.Context(), userCtx))
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var dto domain.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, user.ID, dto.ID)
	assert.Equal(t, "jsmith", dto.Username)
}

func TestAuthHandler_Me_NoContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createAuthHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
