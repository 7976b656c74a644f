package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createAuditLogService(db *gorm.DB) *service.AuditLogService {
	return service.NewAuditLogService(repository.NewAuditLogRepository(db), zap.NewNop())
}

func TestAuditLogService_Log_RecordsUserAndRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)

	userID := uuid.New()
	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID:   userID,
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Role:     domain.RoleInventoryManager,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("X-Request-ID", "req-42")

	entityID := uuid.New()
	err := svc.Log(ctx, req, service.LogEntry{
		Action:     domain.AuditActionCreate,
		EntityType: "Product",
		EntityID:   &entityID,
		NewValues:  map[string]interface{}{"name": "Steel Rack"},
	})
	require.NoError(t, err)

	var entry domain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, userID, *entry.UserID)
	assert.Equal(t, "jsmith", entry.Username)
	assert.Equal(t, domain.AuditActionCreate, entry.Action)
	assert.Equal(t, "Product", entry.EntityType)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, entityID, *entry.EntityID)
	assert.Equal(t, "203.0.113.7", entry.IPAddress)
	assert.Equal(t, "req-42", entry.RequestID)
	assert.Contains(t, entry.NewValues, "Steel Rack")
	assert.False(t, entry.PerformedAt.IsZero())
}

func TestAuditLogService_Log_AnonymousRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/123", nil)
	err := svc.Log(context.Background(), req, service.LogEntry{
		Action:     domain.AuditActionDelete,
		EntityType: "Product",
	})
	require.NoError(t, err)

	var entry domain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Nil(t, entry.UserID)
	assert.Empty(t, entry.Username)
	assert.Equal(t, domain.AuditActionDelete, entry.Action)
}

func TestAuditLogService_List_FiltersByAction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)
	ctx := context.Background()

	for _, action := range []domain.AuditAction{
		domain.AuditActionCreate,
		domain.AuditActionCreate,
		domain.AuditActionUpdate,
		domain.AuditActionDelete,
	} {
		require.NoError(t, svc.Log(ctx, nil, service.LogEntry{
			Action:     action,
			EntityType: "Product",
		}))
	}

	created := domain.AuditActionCreate
	result, err := svc.List(ctx, 1, 20, service.AuditLogQueryParams{Action: &created})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)

	entries, ok := result.Data.([]domain.AuditLogDTO)
	require.True(t, ok)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, domain.AuditActionCreate, entry.Action)
	}
}

func TestAuditLogService_GetByEntity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)
	ctx := context.Background()

	productID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, svc.Log(ctx, nil, service.LogEntry{
		Action:     domain.AuditActionCreate,
		EntityType: "Product",
		EntityID:   &productID,
	}))
	require.NoError(t, svc.Log(ctx, nil, service.LogEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: "Product",
		EntityID:   &productID,
	}))
	require.NoError(t, svc.Log(ctx, nil, service.LogEntry{
		Action:     domain.AuditActionCreate,
		EntityType: "Warehouse",
		EntityID:   &otherID,
	}))

	entries, err := svc.GetByEntity(ctx, "Product", productID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAuditLogService_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrAuditLogNotFound)
}

func TestAuditLogService_CleanupOldLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createAuditLogService(db)
	ctx := context.Background()

	old := &domain.AuditLog{
		Action:      domain.AuditActionCreate,
		EntityType:  "Product",
		PerformedAt: time.Now().AddDate(0, 0, -120),
	}
	recent := &domain.AuditLog{
		Action:      domain.AuditActionUpdate,
		EntityType:  "Product",
		PerformedAt: time.Now(),
	}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(recent).Error)

	deleted, err := svc.CleanupOldLogs(ctx, 90)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var count int64
	require.NoError(t, db.Model(&domain.AuditLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
