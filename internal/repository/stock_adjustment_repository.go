package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// stockAdjustmentSortableFields maps API field names to database column names
var stockAdjustmentSortableFields = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"adjustmentDate": "adjustment_date",
	"quantity":       "quantity",
	"reason":         "reason",
}

// StockAdjustmentRepository handles stock adjustment data access operations
type StockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository creates a new stock adjustment repository instance
func NewStockAdjustmentRepository(db *gorm.DB) *StockAdjustmentRepository {
	return &StockAdjustmentRepository{db: db}
}

// Create creates a new stock adjustment
func (r *StockAdjustmentRepository) Create(ctx context.Context, adj *domain.StockAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

// GetByID retrieves a stock adjustment by its ID with related records preloaded
func (r *StockAdjustmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockAdjustment, error) {
	var adj domain.StockAdjustment
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Where("id = ?", id).
		First(&adj).Error
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

// Update updates an existing stock adjustment
func (r *StockAdjustmentRepository) Update(ctx context.Context, adj *domain.StockAdjustment) error {
	return r.db.WithContext(ctx).Save(adj).Error
}

// Delete deletes a stock adjustment
func (r *StockAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.StockAdjustment{}, "id = ?", id).Error
}

// List returns a paginated list of stock adjustments, optionally filtered by reason substring
func (r *StockAdjustmentRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.StockAdjustment, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of stock adjustments with sort options
func (r *StockAdjustmentRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.StockAdjustment, int64, error) {
	var adjustments []domain.StockAdjustment
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).
		Model(&domain.StockAdjustment{}).
		Preload("Product").
		Preload("Warehouse")
	if search != "" {
		query = query.Where("LOWER(reason) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, stockAdjustmentSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&adjustments).Error

	return adjustments, total, err
}
