package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// orderSortableFields maps API field names to database column names for purchase orders
var orderSortableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"orderDate": "order_date",
	"status":    "status",
}

// OrderRepository handles purchase order data access operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order in the database
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID retrieves an order by its ID with the supplier preloaded
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update updates an existing order in the database
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// UpdateStatus sets the status of an order without touching other columns
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete deletes an order
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Order{}, "id = ?", id).Error
}

// List returns a paginated list of orders, optionally filtered by status substring
func (r *OrderRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Order, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of orders with sort options
func (r *OrderRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Order{}).Preload("Supplier")
	if search != "" {
		query = query.Where("LOWER(status) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, orderSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&orders).Error

	return orders, total, err
}

// CreateDetail creates a new order line
func (r *OrderRepository) CreateDetail(ctx context.Context, detail *domain.OrderDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// GetDetailByID retrieves an order line by its ID with the product preloaded
func (r *OrderRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.OrderDetail, error) {
	var detail domain.OrderDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateDetail updates an existing order line
func (r *OrderRepository) UpdateDetail(ctx context.Context, detail *domain.OrderDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// DeleteDetail deletes an order line
func (r *OrderRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.OrderDetail{}, "id = ?", id).Error
}

// ListDetailsByOrder returns all lines for an order
func (r *OrderRepository) ListDetailsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OrderDetail, error) {
	var details []domain.OrderDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&details).Error
	return details, err
}
