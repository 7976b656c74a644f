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

// ErrInventoryTransactionNotFound is returned when an inventory transaction is not found
var ErrInventoryTransactionNotFound = errors.New("inventory transaction not found")

// ErrInvalidTransactionType is returned when the transaction type is not IN or OUT
var ErrInvalidTransactionType = errors.New("invalid transaction type")

// InventoryTransactionService handles business logic for stock movements
type InventoryTransactionService struct {
	txnRepo       *repository.InventoryTransactionRepository
	productRepo   *repository.ProductRepository
	warehouseRepo *repository.WarehouseRepository
	logger        *zap.Logger
}

// NewInventoryTransactionService creates a new inventory transaction service instance
func NewInventoryTransactionService(
	txnRepo *repository.InventoryTransactionRepository,
	productRepo *repository.ProductRepository,
	warehouseRepo *repository.WarehouseRepository,
	logger *zap.Logger,
) *InventoryTransactionService {
	return &InventoryTransactionService{
		txnRepo:       txnRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// Create records a new inventory transaction
func (s *InventoryTransactionService) Create(ctx context.Context, req *domain.CreateInventoryTransactionRequest) (*domain.InventoryTransactionDTO, error) {
	if !req.TransactionType.IsValid() {
		return nil, ErrInvalidTransactionType
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

	txn := &domain.InventoryTransaction{
		ProductID:       req.ProductID,
		WarehouseID:     req.WarehouseID,
		Quantity:        req.Quantity,
		TransactionType: req.TransactionType,
		TransactionDate: time.Now().UTC(),
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create inventory transaction: %w", err)
	}

	s.logger.Info("inventory transaction created",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("type", string(txn.TransactionType)),
		zap.Int("quantity", txn.Quantity),
	)

	created, err := s.txnRepo.GetByID(ctx, txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload inventory transaction: %w", err)
	}

	dto := mapper.InventoryTransactionToDTO(created)
	return &dto, nil
}

// GetByID retrieves an inventory transaction by ID
func (s *InventoryTransactionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryTransactionDTO, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get inventory transaction: %w", err)
	}

	dto := mapper.InventoryTransactionToDTO(txn)
	return &dto, nil
}

// Update updates the quantity and type of an inventory transaction
func (s *InventoryTransactionService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateInventoryTransactionRequest) (*domain.InventoryTransactionDTO, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get inventory transaction: %w", err)
	}

	if !req.TransactionType.IsValid() {
		return nil, ErrInvalidTransactionType
	}

	txn.Quantity = req.Quantity
	txn.TransactionType = req.TransactionType

	if err := s.txnRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update inventory transaction: %w", err)
	}

	dto := mapper.InventoryTransactionToDTO(txn)
	return &dto, nil
}

// Delete deletes an inventory transaction
func (s *InventoryTransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.txnRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryTransactionNotFound
		}
		return fmt.Errorf("failed to get inventory transaction: %w", err)
	}

	if err := s.txnRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory transaction: %w", err)
	}

	s.logger.Info("inventory transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}

// List returns a paginated list of inventory transactions, optionally filtered by type substring
func (s *InventoryTransactionService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	txns, total, err := s.txnRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory transactions: %w", err)
	}
	return paginate(mapper.InventoryTransactionsToDTOs(txns), total, page, pageSize), nil
}
