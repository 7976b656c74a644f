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

// ErrStockAdjustmentNotFound is returned when a stock adjustment is not found
var ErrStockAdjustmentNotFound = errors.New("stock adjustment not found")

// StockAdjustmentService handles business logic for stock adjustments
type StockAdjustmentService struct {
	adjustmentRepo *repository.StockAdjustmentRepository
	productRepo    *repository.ProductRepository
	warehouseRepo  *repository.WarehouseRepository
	logger         *zap.Logger
}

// NewStockAdjustmentService creates a new stock adjustment service instance
func NewStockAdjustmentService(
	adjustmentRepo *repository.StockAdjustmentRepository,
	productRepo *repository.ProductRepository,
	warehouseRepo *repository.WarehouseRepository,
	logger *zap.Logger,
) *StockAdjustmentService {
	return &StockAdjustmentService{
		adjustmentRepo: adjustmentRepo,
		productRepo:    productRepo,
		warehouseRepo:  warehouseRepo,
		logger:         logger,
	}
}

// Create records a new stock adjustment
func (s *StockAdjustmentService) Create(ctx context.Context, req *domain.CreateStockAdjustmentRequest) (*domain.StockAdjustmentDTO, error) {
	adjustmentDate, err := time.Parse(domain.DateFormat, req.AdjustmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: adjustmentDate", ErrInvalidInput)
	}

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

	adj := &domain.StockAdjustment{
		ProductID:      req.ProductID,
		WarehouseID:    req.WarehouseID,
		AdjustmentDate: adjustmentDate,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
	}

	if err := s.adjustmentRepo.Create(ctx, adj); err != nil {
		return nil, fmt.Errorf("failed to create stock adjustment: %w", err)
	}

	s.logger.Info("stock adjustment created",
		zap.String("adjustment_id", adj.ID.String()),
		zap.Int("quantity", adj.Quantity),
		zap.String("reason", adj.Reason),
	)

	created, err := s.adjustmentRepo.GetByID(ctx, adj.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload stock adjustment: %w", err)
	}

	dto := mapper.StockAdjustmentToDTO(created)
	return &dto, nil
}

// GetByID retrieves a stock adjustment by ID
func (s *StockAdjustmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockAdjustmentDTO, error) {
	adj, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockAdjustmentNotFound
		}
		return nil, fmt.Errorf("failed to get stock adjustment: %w", err)
	}

	dto := mapper.StockAdjustmentToDTO(adj)
	return &dto, nil
}

// Update updates an existing stock adjustment
func (s *StockAdjustmentService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStockAdjustmentRequest) (*domain.StockAdjustmentDTO, error) {
	adj, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockAdjustmentNotFound
		}
		return nil, fmt.Errorf("failed to get stock adjustment: %w", err)
	}

	adjustmentDate, err := time.Parse(domain.DateFormat, req.AdjustmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: adjustmentDate", ErrInvalidInput)
	}

	adj.AdjustmentDate = adjustmentDate
	adj.Quantity = req.Quantity
	adj.Reason = req.Reason

	if err := s.adjustmentRepo.Update(ctx, adj); err != nil {
		return nil, fmt.Errorf("failed to update stock adjustment: %w", err)
	}

	dto := mapper.StockAdjustmentToDTO(adj)
	return &dto, nil
}

// Delete deletes a stock adjustment
func (s *StockAdjustmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.adjustmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStockAdjustmentNotFound
		}
		return fmt.Errorf("failed to get stock adjustment: %w", err)
	}

	if err := s.adjustmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stock adjustment: %w", err)
	}

	s.logger.Info("stock adjustment deleted", zap.String("adjustment_id", id.String()))
	return nil
}

// List returns a paginated list of stock adjustments, optionally filtered by reason substring
func (s *StockAdjustmentService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	adjustments, total, err := s.adjustmentRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock adjustments: %w", err)
	}
	return paginate(mapper.StockAdjustmentsToDTOs(adjustments), total, page, pageSize), nil
}
