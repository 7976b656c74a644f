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

// ErrShipmentNotFound is returned when a shipment is not found
var ErrShipmentNotFound = errors.New("shipment not found")

// ErrShipmentDetailNotFound is returned when a shipment line is not found
var ErrShipmentDetailNotFound = errors.New("shipment detail not found")

// ErrInvalidShipmentStatus is returned when an unknown shipment status is provided
var ErrInvalidShipmentStatus = errors.New("invalid shipment status")

// ShipmentService handles business logic for shipments
type ShipmentService struct {
	shipmentRepo      *repository.ShipmentRepository
	orderRepo         *repository.OrderRepository
	customerOrderRepo *repository.CustomerOrderRepository
	productRepo       *repository.ProductRepository
	logger            *zap.Logger
}

// NewShipmentService creates a new shipment service instance
func NewShipmentService(
	shipmentRepo *repository.ShipmentRepository,
	orderRepo *repository.OrderRepository,
	customerOrderRepo *repository.CustomerOrderRepository,
	productRepo *repository.ProductRepository,
	logger *zap.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo:      shipmentRepo,
		orderRepo:         orderRepo,
		customerOrderRepo: customerOrderRepo,
		productRepo:       productRepo,
		logger:            logger,
	}
}

// Create creates a new shipment
func (s *ShipmentService) Create(ctx context.Context, req *domain.CreateShipmentRequest) (*domain.ShipmentDTO, error) {
	shipmentDate, err := time.Parse(domain.DateFormat, req.ShipmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: shipmentDate", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.ShipmentStatusInTransit
	}
	if !status.IsValid() {
		return nil, ErrInvalidShipmentStatus
	}

	shipment := &domain.Shipment{
		ShipmentDate:   shipmentDate,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		Status:         status,
	}

	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	s.logger.Info("shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("tracking_number", shipment.TrackingNumber),
	)

	dto := mapper.ShipmentToDTO(shipment)
	return &dto, nil
}

// GetByID retrieves a shipment by ID
func (s *ShipmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShipmentDTO, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	dto := mapper.ShipmentToDTO(shipment)
	return &dto, nil
}

// Update updates an existing shipment
func (s *ShipmentService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateShipmentRequest) (*domain.ShipmentDTO, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	shipmentDate, err := time.Parse(domain.DateFormat, req.ShipmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: shipmentDate", ErrInvalidInput)
	}

	shipment.ShipmentDate = shipmentDate
	shipment.Carrier = req.Carrier
	shipment.TrackingNumber = req.TrackingNumber

	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, ErrInvalidShipmentStatus
		}
		shipment.Status = req.Status
	}

	if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}

	dto := mapper.ShipmentToDTO(shipment)
	return &dto, nil
}

// Delete deletes a shipment and its lines
func (s *ShipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.shipmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipmentNotFound
		}
		return fmt.Errorf("failed to get shipment: %w", err)
	}

	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}

	s.logger.Info("shipment deleted", zap.String("shipment_id", id.String()))
	return nil
}

// List returns a paginated list of shipments, optionally filtered by tracking number substring
func (s *ShipmentService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	shipments, total, err := s.shipmentRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return paginate(mapper.ShipmentsToDTOs(shipments), total, page, pageSize), nil
}

// CreateDetail adds a line to a shipment
func (s *ShipmentService) CreateDetail(ctx context.Context, req *domain.CreateShipmentDetailRequest) (*domain.ShipmentDetailDTO, error) {
	if _, err := s.shipmentRepo.GetByID(ctx, req.ShipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if req.OrderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *req.OrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, fmt.Errorf("failed to get order: %w", err)
		}
	}
	if req.CustomerOrderID != nil {
		if _, err := s.customerOrderRepo.GetByID(ctx, *req.CustomerOrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerOrderNotFound
			}
			return nil, fmt.Errorf("failed to get customer order: %w", err)
		}
	}

	detail := &domain.ShipmentDetail{
		ShipmentID:      req.ShipmentID,
		OrderID:         req.OrderID,
		CustomerOrderID: req.CustomerOrderID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
	}

	if err := s.shipmentRepo.CreateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to create shipment detail: %w", err)
	}

	created, err := s.shipmentRepo.GetDetailByID(ctx, detail.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload shipment detail: %w", err)
	}

	dto := mapper.ShipmentDetailToDTO(created)
	return &dto, nil
}

// GetDetailByID retrieves a shipment line by ID
func (s *ShipmentService) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.ShipmentDetailDTO, error) {
	detail, err := s.shipmentRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentDetailNotFound
		}
		return nil, fmt.Errorf("failed to get shipment detail: %w", err)
	}

	dto := mapper.ShipmentDetailToDTO(detail)
	return &dto, nil
}

// UpdateDetail updates a shipment line
func (s *ShipmentService) UpdateDetail(ctx context.Context, id uuid.UUID, req *domain.UpdateShipmentDetailRequest) (*domain.ShipmentDetailDTO, error) {
	detail, err := s.shipmentRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentDetailNotFound
		}
		return nil, fmt.Errorf("failed to get shipment detail: %w", err)
	}

	detail.Quantity = req.Quantity

	if err := s.shipmentRepo.UpdateDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("failed to update shipment detail: %w", err)
	}

	dto := mapper.ShipmentDetailToDTO(detail)
	return &dto, nil
}

// DeleteDetail deletes a shipment line
func (s *ShipmentService) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	if _, err := s.shipmentRepo.GetDetailByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipmentDetailNotFound
		}
		return fmt.Errorf("failed to get shipment detail: %w", err)
	}

	if err := s.shipmentRepo.DeleteDetail(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shipment detail: %w", err)
	}
	return nil
}

// ListDetails returns all lines for a shipment
func (s *ShipmentService) ListDetails(ctx context.Context, shipmentID uuid.UUID) ([]domain.ShipmentDetailDTO, error) {
	if _, err := s.shipmentRepo.GetByID(ctx, shipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	details, err := s.shipmentRepo.ListDetailsByShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipment details: %w", err)
	}
	return mapper.ShipmentDetailsToDTOs(details), nil
}
