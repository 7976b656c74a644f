package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
)

// ErrAuditLogNotFound is returned when an audit log entry is not found
var ErrAuditLogNotFound = errors.New("audit log entry not found")

// AuditLogService records and queries the audit trail
type AuditLogService struct {
	auditRepo *repository.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditLogService creates a new audit log service instance
func NewAuditLogService(auditRepo *repository.AuditLogRepository, logger *zap.Logger) *AuditLogService {
	return &AuditLogService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// LogEntry is the input for recording one audit trail entry
type LogEntry struct {
	Action     domain.AuditAction
	EntityType string
	EntityID   *uuid.UUID
	NewValues  interface{}
}

// Log records an audit trail entry. The acting user is taken from the request
// context when present; anonymous entries keep an empty user.
func (s *AuditLogService) Log(ctx context.Context, r *http.Request, entry LogEntry) error {
	auditLog := &domain.AuditLog{
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		PerformedAt: time.Now().UTC(),
	}

	if userCtx, ok := auth.FromContext(ctx); ok && userCtx != nil {
		userID := userCtx.UserID
		auditLog.UserID = &userID
		auditLog.Username = userCtx.Username
	}

	if r != nil {
		auditLog.IPAddress = clientIP(r)
		auditLog.UserAgent = r.UserAgent()
		auditLog.RequestID = r.Header.Get("X-Request-ID")
	}

	if entry.NewValues != nil {
		if values, err := json.Marshal(entry.NewValues); err == nil {
			auditLog.NewValues = string(values)
		}
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.logger.Error("failed to create audit log entry",
			zap.String("action", string(entry.Action)),
			zap.String("entity_type", entry.EntityType),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// AuditLogQueryParams holds the filters for listing audit log entries
type AuditLogQueryParams struct {
	UserID     *uuid.UUID
	Action     *domain.AuditAction
	EntityType string
	EntityID   *uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
}

// List retrieves a filtered page of the audit trail, newest first
func (s *AuditLogService) List(ctx context.Context, page, pageSize int, params AuditLogQueryParams) (*domain.PaginatedResponse, error) {
	filter := &repository.AuditLogFilter{
		UserID:     params.UserID,
		Action:     params.Action,
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
	}

	logs, total, err := s.auditRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}
	return paginate(mapper.AuditLogsToDTOs(logs), total, page, pageSize), nil
}

// GetByID retrieves a single audit log entry
func (s *AuditLogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditLogDTO, error) {
	log, err := s.auditRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log entry: %w", err)
	}
	dto := mapper.AuditLogToDTO(log)
	return &dto, nil
}

// GetByEntity retrieves the most recent audit log entries for one entity
func (s *AuditLogService) GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]domain.AuditLogDTO, error) {
	logs, err := s.auditRepo.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}
	return mapper.AuditLogsToDTOs(logs), nil
}

// CleanupOldLogs removes entries older than the retention period
func (s *AuditLogService) CleanupOldLogs(ctx context.Context, retentionDays int) (int64, error) {
	before := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.auditRepo.DeleteOlderThan(ctx, before)
	if err != nil {
		s.logger.Error("failed to clean up old audit log entries",
			zap.Int("retention_days", retentionDays),
			zap.Error(err),
		)
		return 0, err
	}

	if count > 0 {
		s.logger.Info("cleaned up old audit log entries",
			zap.Int64("deleted", count),
			zap.Int("retention_days", retentionDays),
		)
	}

	return count, nil
}

// clientIP extracts the originating client IP, honouring proxy headers
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
