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

// ErrProductNotFound is returned when a product is not found
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProductName is returned when trying to create a product with an existing name
var ErrDuplicateProductName = errors.New("product with this name already exists")

// ProductService handles business logic for products
type ProductService struct {
	productRepo *repository.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service instance
func NewProductService(productRepo *repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req *domain.CreateProductRequest) (*domain.ProductDTO, error) {
	existing, err := s.productRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateProductName
	}

	product := &domain.Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateProductName
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	dto := mapper.ProductToDTO(product)
	return &dto, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductDTO, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	dto := mapper.ProductToDTO(product)
	return &dto, nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProductRequest) (*domain.ProductDTO, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	// Check for duplicate name if it's being changed
	if req.Name != product.Name {
		existing, err := s.productRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check product name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateProductName
		}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.UnitPrice = req.UnitPrice
	product.ReorderLevel = req.ReorderLevel

	if err := s.productRepo.Update(ctx, product); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateProductName
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	dto := mapper.ProductToDTO(product)
	return &dto, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

// List returns a paginated list of products.
// An empty search returns all products; otherwise products whose name
// contains the search string (case-insensitive) are returned.
func (s *ProductService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	products, total, err := s.productRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return paginate(mapper.ProductsToDTOs(products), total, page, pageSize), nil
}
