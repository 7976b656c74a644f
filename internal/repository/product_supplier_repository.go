package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// productSupplierSortableFields maps API field names to database column names
var productSupplierSortableFields = map[string]string{
	"createdAt": "product_suppliers.created_at",
	"updatedAt": "product_suppliers.updated_at",
}

// ProductSupplierRepository handles product-supplier link data access operations
type ProductSupplierRepository struct {
	db *gorm.DB
}

// NewProductSupplierRepository creates a new product-supplier repository instance
func NewProductSupplierRepository(db *gorm.DB) *ProductSupplierRepository {
	return &ProductSupplierRepository{db: db}
}

// Create creates a new product-supplier link
func (r *ProductSupplierRepository) Create(ctx context.Context, link *domain.ProductSupplier) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetByID retrieves a product-supplier link by its ID with related records preloaded
func (r *ProductSupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductSupplier, error) {
	var link domain.ProductSupplier
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Supplier").
		Where("id = ?", id).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByPair finds a link by product and supplier, nil when not found
func (r *ProductSupplierRepository) GetByPair(ctx context.Context, productID, supplierID uuid.UUID) (*domain.ProductSupplier, error) {
	var link domain.ProductSupplier
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND supplier_id = ?", productID, supplierID).
		First(&link).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// Update updates an existing product-supplier link
func (r *ProductSupplierRepository) Update(ctx context.Context, link *domain.ProductSupplier) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// Delete deletes a product-supplier link
func (r *ProductSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ProductSupplier{}, "id = ?", id).Error
}

// List returns a paginated list of links, optionally filtered by supplier name substring
func (r *ProductSupplierRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.ProductSupplier, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of links with sort options.
// Search matches the linked supplier's name.
func (r *ProductSupplierRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.ProductSupplier, int64, error) {
	var links []domain.ProductSupplier
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).
		Model(&domain.ProductSupplier{}).
		Preload("Product").
		Preload("Supplier")
	if search != "" {
		query = query.
			Joins("JOIN suppliers ON suppliers.id = product_suppliers.supplier_id").
			Where("LOWER(suppliers.name) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, productSupplierSortableFields, "product_suppliers.created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&links).Error

	return links, total, err
}

// ListByProduct returns all supplier links for a product
func (r *ProductSupplierRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.ProductSupplier, error) {
	var links []domain.ProductSupplier
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}
