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

// ErrCustomerOrderNotFound is returned when a customer order is not found
var ErrCustomerOrderNotFound = errors.New("customer order not found")

// ErrCustomerOrderDetailNotFound is returned when a customer order line is not found
var ErrCustomerOrderDetailNotFound = errors.New("customer order detail not found")

// ErrInvalidCustomerOrderStatus is returned when an unknown status is provided
var ErrInvalidCustomerOrderStatus = errors.New("invalid customer order status")

// CustomerOrderService handles business logic for customer orders
type CustomerOrderService struct {
	orderRepo    *repository.CustomerOrderRepository
	customerRepo *repository.CustomerRepository
	productRepo  *repository.ProductRepository
	logger       *zap.Logger
}

// NewCustomerOrderService creates a new customer order service instance
func NewCustomerOrderService(
	orderRepo *repository.CustomerOrderRepository,
	customerRepo *repository.CustomerRepository,
	productRepo *repository.ProductRepository,
	logger *zap.Logger,
) *CustomerOrderService {
	return &CustomerOrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create creates a new customer order
func (s *CustomerOrderService) Create(ctx context.Context, req *domain.CreateCustomerOrderRequest) (*domain.CustomerOrderDTO, error) {
	orderDate, err := time.Parse(domain.DateFormat, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: orderDate", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.CustomerOrderStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidCustomerOrderStatus
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	order := &domain.CustomerOrder{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Status:     status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create customer order: %w", err)
	}

	s.logger.Info("customer order created",
		zap.String("customer_order_id", order.ID.String()),
		zap.String("customer_id", req.CustomerID.String()),
	)

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload customer order: %w", err)
	}

	dto := mapper.CustomerOrderToDTO(created)
	return &dto, nil
}

// GetByID retrieves a customer order by ID
func (s *CustomerOrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerOrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, fmt.Errorf("failed to get customer order: %w", err)
	}

	dto := mapper.CustomerOrderToDTO(order)
	return &dto, nil
}

// Update updates an existing customer order
func (s *CustomerOrderService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerOrderRequest) (*domain.CustomerOrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, fmt.Errorf("failed to get customer order: %w", err)
	}

	orderDate, err := time.Parse(domain.DateFormat, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: orderDate", ErrInvalidInput)
	}

	if req.CustomerID != order.CustomerID {
		if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("failed to get customer: %w", err)
		}
	}

	order.CustomerID = req.CustomerID
	order.Customer = nil
	order.OrderDate = orderDate

	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, ErrInvalidCustomerOrderStatus
		}
		order.Status = req.Status
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update customer order: %w", err)
	}

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload customer order: %w", err)
	}

	dto := mapper.CustomerOrderToDTO(updated)
	return &dto, nil
}

// Delete deletes a customer order and its lines
func (s *CustomerOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerOrderNotFound
		}
		return fmt.Errorf("failed to get customer order: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer order: %w", err)
	}

	s.logger.Info("customer order deleted", zap.String("customer_order_id", id.String()))
	return nil
}

// List returns a paginated list of customer orders, optionally filtered by status substring
func (s *CustomerOrderService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	orders, total, err := s.orderRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return paginate(mapper.CustomerOrdersToDTOs(orders), total, page, pageSize), nil
}

// CreateDetail adds a line to a customer order
func (s *CustomerOrderService) CreateDetail(ctx context.Context, req *domain.CreateCustomerOrderDetailRequest) (*domain.CustomerOrderDetailDTO, error) {
	if _, err := s.orderRepo.GetByID(ctx, req.CustomerOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, fmt.Errorf("failed to get customer order: %w", err)
	}
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	detail := &domain.CustomerOrderDetail{
		CustomerOrderID: req.CustomerOrderID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
	}

	if err := s.orderRepo.CreateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to create customer order detail: %w", err)
	}

	created, err := s.orderRepo.GetDetailByID(ctx, detail.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload customer order detail: %w", err)
	}

	dto := mapper.CustomerOrderDetailToDTO(created)
	return &dto, nil
}

// GetDetailByID retrieves a customer order line by ID
func (s *CustomerOrderService) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.CustomerOrderDetailDTO, error) {
	detail, err := s.orderRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to get customer order detail: %w", err)
	}

	dto := mapper.CustomerOrderDetailToDTO(detail)
	return &dto, nil
}

// UpdateDetail updates a customer order line
func (s *CustomerOrderService) UpdateDetail(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerOrderDetailRequest) (*domain.CustomerOrderDetailDTO, error) {
	detail, err := s.orderRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to get customer order detail: %w", err)
	}

	detail.Quantity = req.Quantity
	detail.UnitPrice = req.UnitPrice

	if err := s.orderRepo.UpdateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to update customer order detail: %w", err)
	}

	dto := mapper.CustomerOrderDetailToDTO(detail)
	return &dto, nil
}

// DeleteDetail deletes a customer order line
func (s *CustomerOrderService) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetDetailByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerOrderDetailNotFound
		}
		return fmt.Errorf("failed to get customer order detail: %w", err)
	}

	if err := s.orderRepo.DeleteDetail(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer order detail: %w", err)
	}
	return nil
}

// ListDetails returns all lines for a customer order
func (s *CustomerOrderService) ListDetails(ctx context.Context, customerOrderID uuid.UUID) ([]domain.CustomerOrderDetailDTO, error) {
	if _, err := s.orderRepo.GetByID(ctx, customerOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerOrderNotFound
		}
		return nil, fmt.Errorf("failed to get customer order: %w", err)
	}

	details, err := s.orderRepo.ListDetailsByOrder(ctx, customerOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer order details: %w", err)
	}
	return mapper.CustomerOrderDetailsToDTOs(details), nil
}
