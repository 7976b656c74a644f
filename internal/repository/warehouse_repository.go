package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// warehouseSortableFields maps API field names to database column names for warehouses
var warehouseSortableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"location":  "location",
}

// WarehouseRepository handles warehouse data access operations
type WarehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository instance
func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

// Create creates a new warehouse in the database
func (r *WarehouseRepository) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

// GetByID retrieves a warehouse by its ID
func (r *WarehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// GetByName finds a warehouse by exact name, nil when not found
func (r *WarehouseRepository) GetByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&warehouse).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &warehouse, nil
}

// Update updates an existing warehouse in the database
func (r *WarehouseRepository) Update(ctx context.Context, warehouse *domain.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

// Delete deletes a warehouse
func (r *WarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Warehouse{}, "id = ?", id).Error
}

// List returns a paginated list of warehouses, optionally filtered by name substring
func (r *WarehouseRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Warehouse, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of warehouses with sort options
func (r *WarehouseRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Warehouse, int64, error) {
	var warehouses []domain.Warehouse
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Warehouse{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, warehouseSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&warehouses).Error

	return warehouses, total, err
}
