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

// ErrSalesTransactionNotFound is returned when a sales transaction is not found
var ErrSalesTransactionNotFound = errors.New("sales transaction not found")

// SalesTransactionService handles business logic for sales transactions
type SalesTransactionService struct {
	salesRepo    *repository.SalesTransactionRepository
	productRepo  *repository.ProductRepository
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

// NewSalesTransactionService creates a new sales transaction service instance
func NewSalesTransactionService(
	salesRepo *repository.SalesTransactionRepository,
	productRepo *repository.ProductRepository,
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *SalesTransactionService {
	return &SalesTransactionService{
		salesRepo:    salesRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create records a new sales transaction
func (s *SalesTransactionService) Create(ctx context.Context, req *domain.CreateSalesTransactionRequest) (*domain.SalesTransactionDTO, error) {
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	txn := &domain.SalesTransaction{
		ProductID:       req.ProductID,
		CustomerID:      req.CustomerID,
		Quantity:        req.Quantity,
		TransactionDate: time.Now().UTC(),
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
	}

	if err := s.salesRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create sales transaction: %w", err)
	}

	s.logger.Info("sales transaction created",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("status", txn.Status),
	)

	created, err := s.salesRepo.GetByID(ctx, txn.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload sales transaction: %w", err)
	}

	dto := mapper.SalesTransactionToDTO(created)
	return &dto, nil
}

// GetByID retrieves a sales transaction by ID
func (s *SalesTransactionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesTransactionDTO, error) {
	txn, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalesTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get sales transaction: %w", err)
	}

	dto := mapper.SalesTransactionToDTO(txn)
	return &dto, nil
}

// Update updates an existing sales transaction
func (s *SalesTransactionService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSalesTransactionRequest) (*domain.SalesTransactionDTO, error) {
	txn, err := s.salesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalesTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get sales transaction: %w", err)
	}

	txn.Quantity = req.Quantity
	txn.TotalAmount = req.TotalAmount
	txn.Status = req.Status

	if err := s.salesRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update sales transaction: %w", err)
	}

	dto := mapper.SalesTransactionToDTO(txn)
	return &dto, nil
}

// Delete deletes a sales transaction
func (s *SalesTransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.salesRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSalesTransactionNotFound
		}
		return fmt.Errorf("failed to get sales transaction: %w", err)
	}

	if err := s.salesRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sales transaction: %w", err)
	}

	s.logger.Info("sales transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}

// List returns a paginated list of sales transactions, optionally filtered by status substring
func (s *SalesTransactionService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	txns, total, err := s.salesRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales transactions: %w", err)
	}
	return paginate(mapper.SalesTransactionsToDTOs(txns), total, page, pageSize), nil
}
