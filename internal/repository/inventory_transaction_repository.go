package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// inventoryTransactionSortableFields maps API field names to database column names
var inventoryTransactionSortableFields = map[string]string{
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"transactionDate": "transaction_date",
	"transactionType": "transaction_type",
	"quantity":        "quantity",
}

// InventoryTransactionRepository handles stock movement data access operations
type InventoryTransactionRepository struct {
	db *gorm.DB
}

// NewInventoryTransactionRepository creates a new inventory transaction repository instance
func NewInventoryTransactionRepository(db *gorm.DB) *InventoryTransactionRepository {
	return &InventoryTransactionRepository{db: db}
}

// Create creates a new inventory transaction
func (r *InventoryTransactionRepository) Create(ctx context.Context, txn *domain.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// GetByID retrieves an inventory transaction by its ID with related records preloaded
func (r *InventoryTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryTransaction, error) {
	var txn domain.InventoryTransaction
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Where("id = ?", id).
		First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update updates an existing inventory transaction
func (r *InventoryTransactionRepository) Update(ctx context.Context, txn *domain.InventoryTransaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

// Delete deletes an inventory transaction
func (r *InventoryTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.InventoryTransaction{}, "id = ?", id).Error
}

// List returns a paginated list of inventory transactions, optionally filtered by type substring
func (r *InventoryTransactionRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.InventoryTransaction, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of inventory transactions with sort options
func (r *InventoryTransactionRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.InventoryTransaction, int64, error) {
	var txns []domain.InventoryTransaction
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).
		Model(&domain.InventoryTransaction{}).
		Preload("Product").
		Preload("Warehouse")
	if search != "" {
		query = query.Where("LOWER(transaction_type) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, inventoryTransactionSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&txns).Error

	return txns, total, err
}
