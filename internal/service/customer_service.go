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

// ErrCustomerNotFound is returned when a customer is not found
var ErrCustomerNotFound = errors.New("customer not found")

// ErrDuplicateCustomerName is returned when trying to create a customer with an existing name
var ErrDuplicateCustomerName = errors.New("customer with this name already exists")

// CustomerService handles business logic for customers
type CustomerService struct {
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(customerRepo *repository.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	existing, err := s.customerRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCustomerName
	}

	customer := &domain.Customer{
		Name:        req.Name,
		ContactName: req.ContactName,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		Phone:       req.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCustomerName
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name),
	)

	dto := mapper.CustomerToDTO(customer)
	return &dto, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	dto := mapper.CustomerToDTO(customer)
	return &dto, nil
}

// Update updates an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.Name != customer.Name {
		existing, err := s.customerRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check customer name: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateCustomerName
		}
	}

	customer.Name = req.Name
	customer.ContactName = req.ContactName
	customer.Address = req.Address
	customer.City = req.City
	customer.PostalCode = req.PostalCode
	customer.Country = req.Country
	customer.Phone = req.Phone

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCustomerName
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	dto := mapper.CustomerToDTO(customer)
	return &dto, nil
}

// Delete deletes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}

// List returns a paginated list of customers, optionally filtered by name substring
func (s *CustomerService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	customers, total, err := s.customerRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return paginate(mapper.CustomersToDTOs(customers), total, page, pageSize), nil
}
