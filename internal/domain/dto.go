package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for date-only fields
const DateFormat = "2006-01-02"

// TimeFormat is the wire format for timestamps (ISO 8601, UTC)
const TimeFormat = "2006-01-02T15:04:05Z"

// PaginatedResponse wraps a page of results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,max=255"`
	Email     string   `json:"email" validate:"required,email,max=255"`
	FirstName string   `json:"firstName" validate:"max=255"`
	LastName  string   `json:"lastName" validate:"max=255"`
	Password  string   `json:"password" validate:"required,min=8,max=128"`
	Role      UserRole `json:"role" validate:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token and the authenticated user
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expiresAt"`
	User      UserDTO `json:"user"`
}

type ProductDTO struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ReorderLevel int             `json:"reorderLevel"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"max=255"`
	UnitPrice    decimal.Decimal `json:"unitPrice" validate:"required"`
	ReorderLevel int             `json:"reorderLevel" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"max=255"`
	UnitPrice    decimal.Decimal `json:"unitPrice" validate:"required"`
	ReorderLevel int             `json:"reorderLevel" validate:"gte=0"`
}

type SupplierDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	PostalCode  string    `json:"postalCode,omitempty"`
	Country     string    `json:"country,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	ContactName string `json:"contactName" validate:"max=255"`
	Address     string `json:"address"`
	City        string `json:"city" validate:"max=100"`
	PostalCode  string `json:"postalCode" validate:"max=20"`
	Country     string `json:"country" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=50"`
}

type UpdateSupplierRequest = CreateSupplierRequest

type ProductSupplierDTO struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName,omitempty"`
	SupplierID   uuid.UUID `json:"supplierId"`
	SupplierName string    `json:"supplierName,omitempty"`
	CreatedAt    string    `json:"createdAt"`
}

type CreateProductSupplierRequest struct {
	ProductID  uuid.UUID `json:"productId" validate:"required"`
	SupplierID uuid.UUID `json:"supplierId" validate:"required"`
}

type WarehouseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"max=255"`
}

type UpdateWarehouseRequest = CreateWarehouseRequest

type InventoryDTO struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName,omitempty"`
	WarehouseID   uuid.UUID `json:"warehouseId"`
	WarehouseName string    `json:"warehouseName,omitempty"`
	Quantity      int       `json:"quantity"`
	LastUpdated   string    `json:"lastUpdated"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

type CreateInventoryRequest struct {
	ProductID   uuid.UUID `json:"productId" validate:"required"`
	WarehouseID uuid.UUID `json:"warehouseId" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
}

type UpdateInventoryRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type OrderDTO struct {
	ID           uuid.UUID   `json:"id"`
	OrderDate    string      `json:"orderDate"`
	SupplierID   *uuid.UUID  `json:"supplierId,omitempty"`
	SupplierName string      `json:"supplierName,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

type CreateOrderRequest struct {
	OrderDate  string      `json:"orderDate" validate:"required,datetime=2006-01-02"`
	SupplierID *uuid.UUID  `json:"supplierId"`
	Status     OrderStatus `json:"status" validate:"omitempty"`
}

type UpdateOrderRequest struct {
	OrderDate  string      `json:"orderDate" validate:"required,datetime=2006-01-02"`
	SupplierID *uuid.UUID  `json:"supplierId"`
	Status     OrderStatus `json:"status" validate:"omitempty"`
}

type OrderDetailDTO struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type CreateOrderDetailRequest struct {
	OrderID   uuid.UUID       `json:"orderId" validate:"required"`
	ProductID uuid.UUID       `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

type UpdateOrderDetailRequest struct {
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

type CustomerDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	PostalCode  string    `json:"postalCode,omitempty"`
	Country     string    `json:"country,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	ContactName string `json:"contactName" validate:"max=255"`
	Address     string `json:"address"`
	City        string `json:"city" validate:"max=100"`
	PostalCode  string `json:"postalCode" validate:"max=20"`
	Country     string `json:"country" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=50"`
}

type UpdateCustomerRequest = CreateCustomerRequest

type CustomerOrderDTO struct {
	ID           uuid.UUID           `json:"id"`
	CustomerID   uuid.UUID           `json:"customerId"`
	CustomerName string              `json:"customerName,omitempty"`
	OrderDate    string              `json:"orderDate"`
	Status       CustomerOrderStatus `json:"status"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

type CreateCustomerOrderRequest struct {
	CustomerID uuid.UUID           `json:"customerId" validate:"required"`
	OrderDate  string              `json:"orderDate" validate:"required,datetime=2006-01-02"`
	Status     CustomerOrderStatus `json:"status" validate:"omitempty"`
}

type UpdateCustomerOrderRequest = CreateCustomerOrderRequest

type CustomerOrderDetailDTO struct {
	ID              uuid.UUID       `json:"id"`
	CustomerOrderID uuid.UUID       `json:"customerOrderId"`
	ProductID       uuid.UUID       `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type CreateCustomerOrderDetailRequest struct {
	CustomerOrderID uuid.UUID       `json:"customerOrderId" validate:"required"`
	ProductID       uuid.UUID       `json:"productId" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice       decimal.Decimal `json:"unitPrice" validate:"required"`
}

type UpdateCustomerOrderDetailRequest struct {
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

type ShipmentDTO struct {
	ID             uuid.UUID      `json:"id"`
	ShipmentDate   string         `json:"shipmentDate"`
	Carrier        string         `json:"carrier,omitempty"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	Status         ShipmentStatus `json:"status"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

type CreateShipmentRequest struct {
	ShipmentDate   string         `json:"shipmentDate" validate:"required,datetime=2006-01-02"`
	Carrier        string         `json:"carrier" validate:"max=255"`
	TrackingNumber string         `json:"trackingNumber" validate:"max=255"`
	Status         ShipmentStatus `json:"status" validate:"omitempty"`
}

type UpdateShipmentRequest = CreateShipmentRequest

type ShipmentDetailDTO struct {
	ID              uuid.UUID  `json:"id"`
	ShipmentID      uuid.UUID  `json:"shipmentId"`
	OrderID         *uuid.UUID `json:"orderId,omitempty"`
	CustomerOrderID *uuid.UUID `json:"customerOrderId,omitempty"`
	ProductID       uuid.UUID  `json:"productId"`
	ProductName     string     `json:"productName,omitempty"`
	Quantity        int        `json:"quantity"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

type CreateShipmentDetailRequest struct {
	ShipmentID      uuid.UUID  `json:"shipmentId" validate:"required"`
	OrderID         *uuid.UUID `json:"orderId"`
	CustomerOrderID *uuid.UUID `json:"customerOrderId"`
	ProductID       uuid.UUID  `json:"productId" validate:"required"`
	Quantity        int        `json:"quantity" validate:"required,gt=0"`
}

type UpdateShipmentDetailRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type StockAdjustmentDTO struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName,omitempty"`
	WarehouseID    uuid.UUID `json:"warehouseId"`
	WarehouseName  string    `json:"warehouseName,omitempty"`
	AdjustmentDate string    `json:"adjustmentDate"`
	Quantity       int       `json:"quantity"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

type CreateStockAdjustmentRequest struct {
	ProductID      uuid.UUID `json:"productId" validate:"required"`
	WarehouseID    uuid.UUID `json:"warehouseId" validate:"required"`
	AdjustmentDate string    `json:"adjustmentDate" validate:"required,datetime=2006-01-02"`
	Quantity       int       `json:"quantity" validate:"required"`
	Reason         string    `json:"reason" validate:"max=255"`
}

type UpdateStockAdjustmentRequest struct {
	AdjustmentDate string `json:"adjustmentDate" validate:"required,datetime=2006-01-02"`
	Quantity       int    `json:"quantity" validate:"required"`
	Reason         string `json:"reason" validate:"max=255"`
}

type InventoryTransactionDTO struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	WarehouseID     uuid.UUID       `json:"warehouseId"`
	WarehouseName   string          `json:"warehouseName,omitempty"`
	Quantity        int             `json:"quantity"`
	TransactionType TransactionType `json:"transactionType"`
	TransactionDate string          `json:"transactionDate"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type CreateInventoryTransactionRequest struct {
	ProductID       uuid.UUID       `json:"productId" validate:"required"`
	WarehouseID     uuid.UUID       `json:"warehouseId" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	TransactionType TransactionType `json:"transactionType" validate:"required,oneof=IN OUT"`
}

type SalesTransactionDTO struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	CustomerID      uuid.UUID       `json:"customerId"`
	CustomerName    string          `json:"customerName,omitempty"`
	Quantity        int             `json:"quantity"`
	TransactionDate string          `json:"transactionDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type CreateSalesTransactionRequest struct {
	ProductID   uuid.UUID       `json:"productId" validate:"required"`
	CustomerID  uuid.UUID       `json:"customerId" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"required"`
	Status      string          `json:"status" validate:"required,oneof=Paid Pending Cancelled"`
}

type UpdateSalesTransactionRequest struct {
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"required"`
	Status      string          `json:"status" validate:"required,oneof=Paid Pending Cancelled"`
}

type TaskDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	DueDate        string    `json:"dueDate"`
	Completed      bool      `json:"completed"`
	AssignedToID   uuid.UUID `json:"assignedToId"`
	AssignedToName string    `json:"assignedToName,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title        string    `json:"title" validate:"required,max=255"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate" validate:"required"`
	AssignedToID uuid.UUID `json:"assignedToId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title        string    `json:"title" validate:"required,max=255"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate" validate:"required"`
	Completed    bool      `json:"completed"`
	AssignedToID uuid.UUID `json:"assignedToId" validate:"required"`
}

type EventDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Location     string    `json:"location,omitempty"`
	Participants []UserDTO `json:"participants,omitempty"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

type CreateEventRequest struct {
	Name           string      `json:"name" validate:"required,max=255"`
	Description    string      `json:"description"`
	StartTime      time.Time   `json:"startTime" validate:"required"`
	EndTime        time.Time   `json:"endTime" validate:"required,gtfield=StartTime"`
	Location       string      `json:"location" validate:"max=255"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

type UpdateEventRequest = CreateEventRequest

// AuditLogDTO represents an audit trail entry for API responses
type AuditLogDTO struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"userId,omitempty"`
	Username    string          `json:"username,omitempty"`
	Action      AuditAction     `json:"action"`
	EntityType  string          `json:"entityType"`
	EntityID    *uuid.UUID      `json:"entityId,omitempty"`
	NewValues   json.RawMessage `json:"newValues,omitempty"`
	IPAddress   string          `json:"ipAddress,omitempty"`
	RequestID   string          `json:"requestId,omitempty"`
	PerformedAt string          `json:"performedAt"`
}
