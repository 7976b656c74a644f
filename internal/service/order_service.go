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

// ErrOrderNotFound is returned when an order is not found
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderDetailNotFound is returned when an order line is not found
var ErrOrderDetailNotFound = errors.New("order detail not found")

// ErrOrderNotCancellable is returned when cancelling an order that is already
// shipped, delivered, or cancelled
var ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

// ErrInvalidOrderStatus is returned when an unknown order status is provided
var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderCreatedHook is invoked after an order is successfully created.
// Hook failures are logged and never fail the order creation.
type OrderCreatedHook func(ctx context.Context, order *domain.Order)

// OrderService handles business logic for purchase orders
type OrderService struct {
	orderRepo    *repository.OrderRepository
	supplierRepo *repository.SupplierRepository
	productRepo  *repository.ProductRepository
	logger       *zap.Logger
	createdHooks []OrderCreatedHook
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo *repository.OrderRepository,
	supplierRepo *repository.SupplierRepository,
	productRepo *repository.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// OnCreated registers a hook that runs after each successful order creation
func (s *OrderService) OnCreated(hook OrderCreatedHook) {
	s.createdHooks = append(s.createdHooks, hook)
}

// Create creates a new order and dispatches the created hooks
func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.OrderDTO, error) {
	orderDate, err := time.Parse(domain.DateFormat, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: orderDate", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.GetByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, fmt.Errorf("failed to get supplier: %w", err)
		}
	}

	order := &domain.Order{
		OrderDate:  orderDate,
		SupplierID: req.SupplierID,
		Status:     status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)

	for _, hook := range s.createdHooks {
		hook(ctx, order)
	}

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	dto := mapper.OrderToDTO(created)
	return &dto, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	dto := mapper.OrderToDTO(order)
	return &dto, nil
}

// Update updates an existing order
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateOrderRequest) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	orderDate, err := time.Parse(domain.DateFormat, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: orderDate", ErrInvalidInput)
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.GetByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, fmt.Errorf("failed to get supplier: %w", err)
		}
	}

	order.OrderDate = orderDate
	order.SupplierID = req.SupplierID
	order.Supplier = nil

	// Update status if provided, keep existing if empty
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, ErrInvalidOrderStatus
		}
		order.Status = req.Status
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	dto := mapper.OrderToDTO(updated)
	return &dto, nil
}

// Cancel cancels an order while it is still Pending or Placed.
// Shipped, Delivered, and already Cancelled orders are rejected.
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderNotCancellable, order.Status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domain.OrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.logger.Info("order cancelled",
		zap.String("order_id", id.String()),
		zap.String("previous_status", string(order.Status)),
	)

	order.Status = domain.OrderStatusCancelled
	dto := mapper.OrderToDTO(order)
	return &dto, nil
}

// Delete deletes an order and its lines
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("order deleted", zap.String("order_id", id.String()))
	return nil
}

// List returns a paginated list of orders, optionally filtered by status substring
func (s *OrderService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	orders, total, err := s.orderRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return paginate(mapper.OrdersToDTOs(orders), total, page, pageSize), nil
}

// CreateDetail adds a line to an order
func (s *OrderService) CreateDetail(ctx context.Context, req *domain.CreateOrderDetailRequest) (*domain.OrderDetailDTO, error) {
	if _, err := s.orderRepo.GetByID(ctx, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	detail := &domain.OrderDetail{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}

	if err := s.orderRepo.CreateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to create order detail: %w", err)
	}

	created, err := s.orderRepo.GetDetailByID(ctx, detail.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order detail: %w", err)
	}

	dto := mapper.OrderDetailToDTO(created)
	return &dto, nil
}

// GetDetailByID retrieves an order line by ID
func (s *OrderService) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.OrderDetailDTO, error) {
	detail, err := s.orderRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to get order detail: %w", err)
	}

	dto := mapper.OrderDetailToDTO(detail)
	return &dto, nil
}

// UpdateDetail updates an order line
func (s *OrderService) UpdateDetail(ctx context.Context, id uuid.UUID, req *domain.UpdateOrderDetailRequest) (*domain.OrderDetailDTO, error) {
	detail, err := s.orderRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to get order detail: %w", err)
	}

	detail.Quantity = req.Quantity
	detail.UnitPrice = req.UnitPrice

	if err := s.orderRepo.UpdateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to update order detail: %w", err)
	}

	dto := mapper.OrderDetailToDTO(detail)
	return &dto, nil
}

// DeleteDetail deletes an order line
func (s *OrderService) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetDetailByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderDetailNotFound
		}
		return fmt.Errorf("failed to get order detail: %w", err)
	}

	if err := s.orderRepo.DeleteDetail(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order detail: %w", err)
	}
	return nil
}

// ListDetails returns all lines for an order
func (s *OrderService) ListDetails(ctx context.Context, orderID uuid.UUID) ([]domain.OrderDetailDTO, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	details, err := s.orderRepo.ListDetailsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order details: %w", err)
	}
	return mapper.OrderDetailsToDTOs(details), nil
}
