package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/auth"
)

func setupMiddleware(t *testing.T) (*auth.Middleware, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)
	return auth.NewMiddleware(tokens, zap.NewNop()), tokens
}

func TestMiddleware_Authenticate_ValidToken(t *testing.T) {
	middleware, tokens := setupMiddleware(t)
	user := testUser()

	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	var gotCtx *auth.UserContext
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCtx, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotCtx)
	assert.Equal(t, user.ID, gotCtx.UserID)
	assert.Equal(t, user.Username, gotCtx.Username)
}

func TestMiddleware_Authenticate_MissingHeader(t *testing.T) {
	middleware, _ := setupMiddleware(t)

	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing Authorization header")
}

func TestMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	middleware, _ := setupMiddleware(t)

	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_Authenticate_InvalidToken(t *testing.T) {
	middleware, _ := setupMiddleware(t)

	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestMiddleware_RequireRole(t *testing.T) {
	middleware, tokens := setupMiddleware(t)

	protected := middleware.Authenticate(
		middleware.RequireRole("Administrator")(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	t.Run("allowed", func(t *testing.T) {
		user := testUser()
		user.Role = "Administrator"
		token, _, err := tokens.Issue(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/123", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		user := testUser()
		token, _, err := tokens.Issue(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/123", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMiddleware_RequireRole_AdministratorBypassesOtherRoles(t *testing.T) {
	middleware, tokens := setupMiddleware(t)

	protected := middleware.Authenticate(
		middleware.RequireRole("Inventory Manager")(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	user := testUser()
	user.Role = "Administrator"
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock-adjustments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
