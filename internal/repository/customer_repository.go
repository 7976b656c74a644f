package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// customerSortableFields maps API field names to database column names for customers
var customerSortableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"city":      "city",
	"country":   "country",
}

// CustomerRepository handles customer data access operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer in the database
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID retrieves a customer by its ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByName finds a customer by exact name, nil when not found
func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Update updates an existing customer in the database
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

// List returns a paginated list of customers, optionally filtered by name substring
func (r *CustomerRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Customer, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of customers with sort options
func (r *CustomerRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Customer, int64, error) {
	var customers []domain.Customer
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Customer{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, customerSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&customers).Error

	return customers, total, err
}
