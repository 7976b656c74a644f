package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSupplierNotFound is returned when a supplier is not found
var ErrSupplierNotFound = errors.New("supplier not found")

// ErrDuplicateSupplierName is returned when trying to create a supplier with an existing name
var ErrDuplicateSupplierName = errors.New("supplier with this name already exists")

// SupplierService handles business logic for suppliers
type SupplierService struct {
	supplierRepo *repository.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a new supplier service instance
func NewSupplierService(supplierRepo *repository.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req *domain.CreateSupplierRequest) (*domain.SupplierDTO, error) {
	existing, err := s.supplierRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check supplier name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateSupplierName
	}

	supplier := &domain.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		Phone:       req.Phone,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSupplierName
		}
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.logger.Info("supplier created",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("name", supplier.Name),
	)

	dto := mapper.SupplierToDTO(supplier)
	return &dto, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplierDTO, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	dto := mapper.SupplierToDTO(supplier)
	return &dto, nil
}

// Update updates an existing supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSupplierRequest) (*domain.SupplierDTO, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	if req.Name != supplier.Name {
		existing, err := s.supplierRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check supplier name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateSupplierName
		}
	}

	supplier.Name = req.Name
	supplier.ContactName = req.ContactName
	supplier.Address = req.Address
	supplier.City = req.City
	supplier.PostalCode = req.PostalCode
	supplier.Country = req.Country
	supplier.Phone = req.Phone

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSupplierName
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	dto := mapper.SupplierToDTO(supplier)
	return &dto, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return fmt.Errorf("failed to get supplier: %w", err)
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	s.logger.Info("supplier deleted", zap.String("supplier_id", id.String()))
	return nil
}

// List returns a paginated list of suppliers, optionally filtered by name substring
func (s *SupplierService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	suppliers, total, err := s.supplierRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return paginate(mapper.SuppliersToDTOs(suppliers), total, page, pageSize), nil
}
