package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// salesTransactionSortableFields maps API field names to database column names
var salesTransactionSortableFields = map[string]string{
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"transactionDate": "transaction_date",
	"totalAmount":     "total_amount",
	"quantity":        "quantity",
	"status":          "status",
}

// SalesTransactionRepository handles sales transaction data access operations
type SalesTransactionRepository struct {
	db *gorm.DB
}

// NewSalesTransactionRepository creates a new sales transaction repository instance
func NewSalesTransactionRepository(db *gorm.DB) *SalesTransactionRepository {
	return &SalesTransactionRepository{db: db}
}

// Create creates a new sales transaction
func (r *SalesTransactionRepository) Create(ctx context.Context, txn *domain.SalesTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// GetByID retrieves a sales transaction by its ID with related records preloaded
func (r *SalesTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesTransaction, error) {
	var txn domain.SalesTransaction
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Customer").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update updates an existing sales transaction
func (r *SalesTransactionRepository) Update(ctx context.Context, txn *domain.SalesTransaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

// Delete deletes a sales transaction
func (r *SalesTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.SalesTransaction{}, "id = ?", id).Error
}

// List returns a paginated list of sales transactions, optionally filtered by status substring
func (r *SalesTransactionRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.SalesTransaction, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of sales transactions with sort options
func (r *SalesTransactionRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.SalesTransaction, int64, error) {
	var txns []domain.SalesTransaction
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).
		Model(&domain.SalesTransaction{}).
		Preload("Product").
		Preload("Customer")
	if search != "" {
		query = query.Where("LOWER(status) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, salesTransactionSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&txns).Error

	return txns, total, err
}
