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

// ErrWarehouseNotFound is returned when a warehouse is not found
var ErrWarehouseNotFound = errors.New("warehouse not found")

// ErrDuplicateWarehouseName is returned when trying to create a warehouse with an existing name
var ErrDuplicateWarehouseName = errors.New("warehouse with this name already exists")

// WarehouseService handles business logic for warehouses
type WarehouseService struct {
	warehouseRepo *repository.WarehouseRepository
	inventoryRepo *repository.InventoryRepository
	logger        *zap.Logger
}

// NewWarehouseService creates a new warehouse service instance
func NewWarehouseService(
	warehouseRepo *repository.WarehouseRepository,
	inventoryRepo *repository.InventoryRepository,
	logger *zap.Logger,
) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req *domain.CreateWarehouseRequest) (*domain.WarehouseDTO, error) {
	existing, err := s.warehouseRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check warehouse name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateWarehouseName
	}

	warehouse := &domain.Warehouse{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateWarehouseName
		}
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}

	s.logger.Info("warehouse created",
		zap.String("warehouse_id", warehouse.ID.String()),
		zap.String("name", warehouse.Name),
	)

	dto := mapper.WarehouseToDTO(warehouse)
	return &dto, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseDTO, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	dto := mapper.WarehouseToDTO(warehouse)
	return &dto, nil
}

// Update updates an existing warehouse
func (s *WarehouseService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateWarehouseRequest) (*domain.WarehouseDTO, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	if req.Name != warehouse.Name {
		existing, err := s.warehouseRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check warehouse name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateWarehouseName
		}
	}

	warehouse.Name = req.Name
	warehouse.Location = req.Location

	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateWarehouseName
		}
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}

	dto := mapper.WarehouseToDTO(warehouse)
	return &dto, nil
}

// Delete deletes a warehouse
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.warehouseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWarehouseNotFound
		}
		return fmt.Errorf("failed to get warehouse: %w", err)
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}

	s.logger.Info("warehouse deleted", zap.String("warehouse_id", id.String()))
	return nil
}

// List returns a paginated list of warehouses, optionally filtered by name substring
func (s *WarehouseService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	warehouses, total, err := s.warehouseRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return paginate(mapper.WarehousesToDTOs(warehouses), total, page, pageSize), nil
}

// ListInventory returns the inventory rows stored in a warehouse
func (s *WarehouseService) ListInventory(ctx context.Context, id uuid.UUID) ([]domain.InventoryDTO, error) {
	if _, err := s.warehouseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	rows, err := s.inventoryRepo.ListByWarehouse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse inventory: %w", err)
	}
	return mapper.InventoriesToDTOs(rows), nil
}
