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

// ErrProductSupplierNotFound is returned when a product-supplier link is not found
var ErrProductSupplierNotFound = errors.New("product supplier link not found")

// ErrDuplicateProductSupplier is returned when the product is already linked to the supplier
var ErrDuplicateProductSupplier = errors.New("product is already linked to this supplier")

// ProductSupplierService handles business logic for product-supplier links
type ProductSupplierService struct {
	linkRepo     *repository.ProductSupplierRepository
	productRepo  *repository.ProductRepository
	supplierRepo *repository.SupplierRepository
	logger       *zap.Logger
}

// NewProductSupplierService creates a new product-supplier service instance
func NewProductSupplierService(
	linkRepo *repository.ProductSupplierRepository,
	productRepo *repository.ProductRepository,
	supplierRepo *repository.SupplierRepository,
	logger *zap.Logger,
) *ProductSupplierService {
	return &ProductSupplierService{
		linkRepo:     linkRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create links a product to a supplier
func (s *ProductSupplierService) Create(ctx context.Context, req *domain.CreateProductSupplierRequest) (*domain.ProductSupplierDTO, error) {
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	existing, err := s.linkRepo.GetByPair(ctx, req.ProductID, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product supplier link: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateProductSupplier
	}

	link := &domain.ProductSupplier{
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateProductSupplier
		}
		return nil, fmt.Errorf("failed to create product supplier link: %w", err)
	}

	s.logger.Info("product supplier link created",
		zap.String("product_id", req.ProductID.String()),
		zap.String("supplier_id", req.SupplierID.String()),
	)

	created, err := s.linkRepo.GetByID(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product supplier link: %w", err)
	}

	dto := mapper.ProductSupplierToDTO(created)
	return &dto, nil
}

// GetByID retrieves a product-supplier link by ID
func (s *ProductSupplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductSupplierDTO, error) {
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get product supplier link: %w", err)
	}

	dto := mapper.ProductSupplierToDTO(link)
	return &dto, nil
}

// Update repoints an existing link at a different product or supplier
func (s *ProductSupplierService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateProductSupplierRequest) (*domain.ProductSupplierDTO, error) {
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get product supplier link: %w", err)
	}

	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	if req.ProductID != link.ProductID || req.SupplierID != link.SupplierID {
		existing, err := s.linkRepo.GetByPair(ctx, req.ProductID, req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("failed to check product supplier link: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateProductSupplier
		}
	}

	link.ProductID = req.ProductID
	link.SupplierID = req.SupplierID
	link.Product = nil
	link.Supplier = nil

	if err := s.linkRepo.Update(ctx, link); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateProductSupplier
		}
		return nil, fmt.Errorf("failed to update product supplier link: %w", err)
	}

	updated, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product supplier link: %w", err)
	}

	dto := mapper.ProductSupplierToDTO(updated)
	return &dto, nil
}

// Delete removes a product-supplier link
func (s *ProductSupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.linkRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductSupplierNotFound
		}
		return fmt.Errorf("failed to get product supplier link: %w", err)
	}

	if err := s.linkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product supplier link: %w", err)
	}

	s.logger.Info("product supplier link deleted", zap.String("link_id", id.String()))
	return nil
}

// List returns a paginated list of links, optionally filtered by supplier name substring
func (s *ProductSupplierService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	links, total, err := s.linkRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list product supplier links: %w", err)
	}
	return paginate(mapper.ProductSuppliersToDTOs(links), total, page, pageSize), nil
}

// ListByProduct returns all supplier links for a product
func (s *ProductSupplierService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.ProductSupplierDTO, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	links, err := s.linkRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product suppliers: %w", err)
	}
	return mapper.ProductSuppliersToDTOs(links), nil
}
