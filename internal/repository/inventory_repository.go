package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// inventorySortableFields maps API field names to database column names for inventory rows
var inventorySortableFields = map[string]string{
	"createdAt":   "inventories.created_at",
	"updatedAt":   "inventories.updated_at",
	"quantity":    "inventories.quantity",
	"lastUpdated": "inventories.last_updated",
}

// InventoryRepository handles inventory level data access operations
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository instance
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create creates a new inventory row
func (r *InventoryRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// GetByID retrieves an inventory row by its ID with related records preloaded
func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Where("id = ?", id).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByProductWarehouse finds the inventory row for a product in a warehouse, nil when not found
func (r *InventoryRepository) GetByProductWarehouse(ctx context.Context, productID, warehouseID uuid.UUID) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&inv).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

// Update updates an existing inventory row
func (r *InventoryRepository) Update(ctx context.Context, inv *domain.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// Delete deletes an inventory row
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Inventory{}, "id = ?", id).Error
}

// List returns a paginated list of inventory rows, optionally filtered by product name substring
func (r *InventoryRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Inventory, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of inventory rows with sort options.
// Search matches the linked product's name.
func (r *InventoryRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Inventory, int64, error) {
	var rows []domain.Inventory
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).
		Model(&domain.Inventory{}).
		Preload("Product").
		Preload("Warehouse")
	if search != "" {
		query = query.
			Joins("JOIN products ON products.id = inventories.product_id").
			Where("LOWER(products.name) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, inventorySortableFields, "inventories.created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&rows).Error

	return rows, total, err
}

// ListByWarehouse returns all inventory rows for a warehouse
func (r *InventoryRepository) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]domain.Inventory, error) {
	var rows []domain.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("warehouse_id = ?", warehouseID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
