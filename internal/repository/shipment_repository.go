package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"gorm.io/gorm"
)

// shipmentSortableFields maps API field names to database column names for shipments
var shipmentSortableFields = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"shipmentDate":   "shipment_date",
	"carrier":        "carrier",
	"trackingNumber": "tracking_number",
	"status":         "status",
}

// ShipmentRepository handles shipment data access operations
type ShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository creates a new shipment repository instance
func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// Create creates a new shipment in the database
func (r *ShipmentRepository) Create(ctx context.Context, shipment *domain.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

// GetByID retrieves a shipment by its ID
func (r *ShipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shipment).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// Update updates an existing shipment in the database
func (r *ShipmentRepository) Update(ctx context.Context, shipment *domain.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}

// Delete deletes a shipment
func (r *ShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Shipment{}, "id = ?", id).Error
}

// List returns a paginated list of shipments, optionally filtered by tracking number substring
func (r *ShipmentRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Shipment, int64, error) {
	return r.ListWithSortConfig(ctx, page, pageSize, search, DefaultSortConfig())
}

// ListWithSortConfig returns a paginated list of shipments with sort options
func (r *ShipmentRepository) ListWithSortConfig(ctx context.Context, page, pageSize int, search string, sort SortConfig) ([]domain.Shipment, int64, error) {
	var shipments []domain.Shipment
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Shipment{})
	if search != "" {
		query = query.Where("LOWER(tracking_number) LIKE ?", SearchPattern(search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := BuildOrderClause(sort, shipmentSortableFields, "created_at")

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order(orderClause).Find(&shipments).Error

	return shipments, total, err
}

// CreateDetail creates a new shipment line
func (r *ShipmentRepository) CreateDetail(ctx context.Context, detail *domain.ShipmentDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// GetDetailByID retrieves a shipment line by its ID with the product preloaded
func (r *ShipmentRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.ShipmentDetail, error) {
	var detail domain.ShipmentDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateDetail updates an existing shipment line
func (r *ShipmentRepository) UpdateDetail(ctx context.Context, detail *domain.ShipmentDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// DeleteDetail deletes a shipment line
func (r *ShipmentRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ShipmentDetail{}, "id = ?", id).Error
}

// ListDetailsByShipment returns all lines for a shipment
func (r *ShipmentRepository) ListDetailsByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.ShipmentDetail, error) {
	var details []domain.ShipmentDetail
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("shipment_id = ?", shipmentID).
		Order("created_at ASC").
		Find(&details).Error
	return details, err
}
