package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// customerOrderSortableFields maps API field names to database column names for customer orders
var customerOrderSortableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"orderDate": "order_date",
	"status":    "status",
}

// CustomerOrderRepository handles customer order data access operations
type CustomerOrderRepository struct {
	db *gorm.DB
}

// NewCustomerOrderRepository creates a new customer order repository instance
func NewCustomerOrderRepository(db *gorm.DB) *CustomerOrderRepository {
	return &CustomerOrderRepository{db: db}
}

// Create creates a new customer order in the database
func (r *CustomerOrderRepository) Create(ctx context.Context, order *domain.CustomerOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID retrieves a customer order by its ID with the customer preloaded
func (r *CustomerOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerOrder, error) {
	var order domain.CustomerOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update updates an existing customer order in the database
func (r *CustomerOrderRepository) Update(ctx context.Context, order *domain.CustomerOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Delete deletes a customer order
func (r *CustomerOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CustomerOrder{}, "id = ?", id).Error
}

// List returns a paginated list of customer orders, optionally filtered by status substring
func (r *CustomerOrderRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.CustomerOrder, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of customer orders with sort options
func (r *CustomerOrderRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.CustomerOrder, int64, error) {
	var orders []domain.CustomerOrder
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.CustomerOrder{}).Preload("Customer")
	if search != "" {
		query = query.Where("LOWER(status) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, customerOrderSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&orders).Error

	return orders, total, err
}

// CreateDetail creates a new customer order line
func (r *CustomerOrderRepository) CreateDetail(ctx context.Context, detail *domain.CustomerOrderDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// GetDetailByID retrieves a customer order line by its ID with the product preloaded
func (r *CustomerOrderRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.CustomerOrderDetail, error) {
	var detail domain.CustomerOrderDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateDetail updates an existing customer order line
func (r *CustomerOrderRepository) UpdateDetail(ctx context.Context, detail *domain.CustomerOrderDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// DeleteDetail deletes a customer order line
func (r *CustomerOrderRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CustomerOrderDetail{}, "id = ?", id).Error
}

// ListDetailsByOrder returns all lines for a customer order
func (r *CustomerOrderRepository) ListDetailsByOrder(ctx context.Context, customerOrderID uuid.UUID) ([]domain.CustomerOrderDetail, error) {
	var details []domain.CustomerOrderDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_order_id = ?", customerOrderID).
		Order("created_at ASC").
		Find(&details).Error
	return details, err
}
