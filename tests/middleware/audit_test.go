package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/http/middleware"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func TestAuditMiddleware_SkipsGETRequests(t *testing.T) {
	config := &middleware.AuditConfig{
		SkipPaths:   []string{"/health"},
		SkipMethods: []string{http.MethodOptions, http.MethodHead},
		AuditReads:  false,
	}

	am := middleware.NewAuditMiddleware(nil, config, zap.NewNop())

	handlerCalled := false
	handler := am.Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditMiddleware_SkipsHealthPaths(t *testing.T) {
	am := middleware.NewAuditMiddleware(nil, middleware.DefaultAuditConfig(), zap.NewNop())

	paths := []string{"/health", "/health/db", "/health/ready"}
	for _, path := range paths {
		handlerCalled := false
		handler := am.Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, handlerCalled, "handler should be called for path %s", path)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuditMiddleware_SkipsOPTIONSMethod(t *testing.T) {
	am := middleware.NewAuditMiddleware(nil, middleware.DefaultAuditConfig(), zap.NewNop())

	handlerCalled := false
	handler := am.Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditMiddleware_DefaultConfig(t *testing.T) {
	config := middleware.DefaultAuditConfig()

	assert.Contains(t, config.SkipPaths, "/health")
	assert.Contains(t, config.SkipPaths, "/health/db")
	assert.Contains(t, config.SkipPaths, "/health/ready")
	assert.Contains(t, config.SkipMethods, http.MethodOptions)
	assert.Contains(t, config.SkipMethods, http.MethodHead)
	assert.False(t, config.AuditReads)
}

func TestAuditMiddleware_NilConfigFallsBackToDefault(t *testing.T) {
	am := middleware.NewAuditMiddleware(nil, nil, zap.NewNop())

	handlerCalled := false
	handler := am.Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
}

func TestAuditMiddleware_BodyStillReadableByHandler(t *testing.T) {
	am := middleware.NewAuditMiddleware(nil, middleware.DefaultAuditConfig(), zap.NewNop())

	var gotBody string
	handler := am.Audit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))

	body := `{"name":"Steel Rack"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, gotBody)
}

func TestAuditMiddleware_RecordsSuccessfulModification(t *testing.T) {
	db := testutil.SetupTestDB(t)
	auditService := service.NewAuditLogService(repository.NewAuditLogRepository(db), zap.NewNop())
	am := middleware.NewAuditMiddleware(auditService, middleware.DefaultAuditConfig(), zap.NewNop())

	r := chi.NewRouter()
	r.Use(am.Audit)
	r.Post("/api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	body := `{"name":"Steel Rack","password":"should-not-be-stored"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	// The entry is written off the request path, so wait for it to land.
	var entries []domain.AuditLog
	require.Eventually(t, func() bool {
		if err := db.Find(&entries).Error; err != nil {
			return false
		}
		return len(entries) == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := entries[0]
	assert.Equal(t, domain.AuditActionCreate, entry.Action)
	assert.Equal(t, "Product", entry.EntityType)
	assert.Contains(t, entry.NewValues, "Steel Rack")
	assert.NotContains(t, entry.NewValues, "should-not-be-stored")
}

func TestAuditMiddleware_SkipsFailedRequests(t *testing.T) {
	db := testutil.SetupTestDB(t)
	auditService := service.NewAuditLogService(repository.NewAuditLogRepository(db), zap.NewNop())
	am := middleware.NewAuditMiddleware(auditService, middleware.DefaultAuditConfig(), zap.NewNop())

	r := chi.NewRouter()
	r.Use(am.Audit)
	r.Post("/api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Give the recorder a moment, then confirm nothing was written.
	time.Sleep(100 * time.Millisecond)
	var count int64
	require.NoError(t, db.Model(&domain.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}
