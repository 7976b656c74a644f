package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInventoryNotFound is returned when an inventory row is not found
var ErrInventoryNotFound = errors.New("inventory record not found")

// ErrDuplicateInventory is returned when stock for the product already exists in the warehouse
var ErrDuplicateInventory = errors.New("inventory for this product and warehouse already exists")

// InventoryService handles business logic for inventory levels
type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
	productRepo   *repository.ProductRepository
	warehouseRepo *repository.WarehouseRepository
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(
	inventoryRepo *repository.InventoryRepository,
	productRepo *repository.ProductRepository,
	warehouseRepo *repository.WarehouseRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// Create creates a new inventory row for a product in a warehouse
func (s *InventoryService) Create(ctx context.Context, req *domain.CreateInventoryRequest) (*domain.InventoryDTO, error) {
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if _, err := s.warehouseRepo.GetByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	existing, err := s.inventoryRepo.GetByProductWarehouse(ctx, req.ProductID, req.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateInventory
	}

	inv := &domain.Inventory{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.inventoryRepo.Create(ctx, inv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateInventory
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	s.logger.Info("inventory created",
		zap.String("inventory_id", inv.ID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("warehouse_id", req.WarehouseID.String()),
		zap.Int("quantity", req.Quantity),
	)

	created, err := s.inventoryRepo.GetByID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload inventory: %w", err)
	}

	dto := mapper.InventoryToDTO(created)
	return &dto, nil
}

// GetByID retrieves an inventory row by ID
func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryDTO, error) {
	inv, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	dto := mapper.InventoryToDTO(inv)
	return &dto, nil
}

// Update sets the quantity of an inventory row and refreshes its last updated time
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateInventoryRequest) (*domain.InventoryDTO, error) {
	inv, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	inv.Quantity = req.Quantity
	inv.LastUpdated = time.Now().UTC()

	if err := s.inventoryRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	dto := mapper.InventoryToDTO(inv)
	return &dto, nil
}

// Delete deletes an inventory row
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.inventoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryNotFound
		}
		return fmt.Errorf("failed to get inventory: %w", err)
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}

	s.logger.Info("inventory deleted", zap.String("inventory_id", id.String()))
	return nil
}

// List returns a paginated list of inventory rows.
// Search matches the linked product's name.
func (s *InventoryService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	rows, total, err := s.inventoryRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return paginate(mapper.InventoriesToDTOs(rows), total, page, pageSize), nil
}
