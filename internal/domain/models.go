package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a UUID so the model works on both postgres and sqlite
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// UserRole represents the role of a user within the inventory system
type UserRole string

const (
	RoleAdministrator    UserRole = "Administrator"
	RoleInventoryManager UserRole = "Inventory Manager"
	RoleWarehouseStaff   UserRole = "Warehouse Staff"
	RolePurchasingMgr    UserRole = "Purchasing Manager"
	RoleSalesManager     UserRole = "Sales Manager"
	RoleCustomerService  UserRole = "Customer Service Representative"
	RoleTechnicalService UserRole = "Technical Service Representative"
	RoleAccountant       UserRole = "Accountant"
	RoleAuditor          UserRole = "Auditor"
	RoleSystemUser       UserRole = "System User"
	RoleCustomer         UserRole = "Customer"
	RoleStandardUser     UserRole = "Standard User"
)

// IsValid checks if the UserRole is a known role
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleInventoryManager, RoleWarehouseStaff,
		RolePurchasingMgr, RoleSalesManager, RoleCustomerService,
		RoleTechnicalService, RoleAccountant, RoleAuditor,
		RoleSystemUser, RoleCustomer, RoleStandardUser:
		return true
	}
	return false
}

// User represents an account that can sign in to the system
type User struct {
	BaseModel
	Username     string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName    string   `gorm:"type:varchar(255);column:first_name"`
	LastName     string   `gorm:"type:varchar(255);column:last_name"`
	PasswordHash string   `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         UserRole `gorm:"type:varchar(50);not null;default:'Standard User';index"`
	IsActive     bool     `gorm:"not null;default:true;column:is_active"`
}

// FullName returns the user's full name
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// Product represents a product that can be stocked, ordered, and sold
type Product struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description  string          `gorm:"type:text"`
	Category     string          `gorm:"type:varchar(255);index"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price"`
	ReorderLevel int             `gorm:"not null;default:0;column:reorder_level"`
}

// Supplier represents a provider of products
type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	ContactName string `gorm:"type:varchar(255);column:contact_name"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20);column:postal_code"`
	Country     string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
}

// ProductSupplier links a product to a supplier that provides it.
// Each (product, supplier) pair exists at most once.
type ProductSupplier struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;column:product_id;uniqueIndex:idx_product_supplier"`
	Product    *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;column:supplier_id;uniqueIndex:idx_product_supplier"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

// Warehouse represents a storage facility where products are stored
type Warehouse struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Location string `gorm:"type:varchar(255)"`
}

// Inventory tracks the stock of one product in one warehouse.
// Each (product, warehouse) pair exists at most once.
type Inventory struct {
	BaseModel
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;column:product_id;uniqueIndex:idx_inventory_product_warehouse"`
	Product     *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	WarehouseID uuid.UUID  `gorm:"type:uuid;not null;column:warehouse_id;uniqueIndex:idx_inventory_product_warehouse"`
	Warehouse   *Warehouse `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	Quantity    int        `gorm:"not null"`
	LastUpdated time.Time  `gorm:"not null;column:last_updated"`
}

// OrderStatus represents the status of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid checks if the OrderStatus is a known status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPlaced, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a purchase order sent to a supplier
type Order struct {
	BaseModel
	OrderDate  time.Time   `gorm:"type:date;not null;column:order_date"`
	SupplierID *uuid.UUID  `gorm:"type:uuid;column:supplier_id;index"`
	Supplier   *Supplier   `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	Status     OrderStatus `gorm:"type:varchar(50);not null;default:'Pending';index"`
}

// CanBeCancelled reports whether the order may still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusPlaced
}

// OrderDetail represents one product line item of a purchase order
type OrderDetail struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;column:order_id;index"`
	Order     *Order          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;column:product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price"`
}

// Customer represents a customer who places orders
type Customer struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	ContactName string `gorm:"type:varchar(255);column:contact_name"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20);column:postal_code"`
	Country     string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
}

// CustomerOrderStatus represents the status of a customer order
type CustomerOrderStatus string

const (
	CustomerOrderStatusPending   CustomerOrderStatus = "Pending"
	CustomerOrderStatusCompleted CustomerOrderStatus = "Completed"
	CustomerOrderStatusCancelled CustomerOrderStatus = "Cancelled"
)

// IsValid checks if the CustomerOrderStatus is a known status
func (s CustomerOrderStatus) IsValid() bool {
	switch s {
	case CustomerOrderStatusPending, CustomerOrderStatusCompleted, CustomerOrderStatusCancelled:
		return true
	}
	return false
}

// CustomerOrder represents a sales order placed by a customer
type CustomerOrder struct {
	BaseModel
	CustomerID uuid.UUID           `gorm:"type:uuid;not null;column:customer_id;index"`
	Customer   *Customer           `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	OrderDate  time.Time           `gorm:"type:date;not null;column:order_date"`
	Status     CustomerOrderStatus `gorm:"type:varchar(50);not null;default:'Pending';index"`
}

// CustomerOrderDetail represents one product line item of a customer order
type CustomerOrderDetail struct {
	BaseModel
	CustomerOrderID uuid.UUID       `gorm:"type:uuid;not null;column:customer_order_id;index"`
	CustomerOrder   *CustomerOrder  `gorm:"foreignKey:CustomerOrderID;constraint:OnDelete:CASCADE"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;column:product_id"`
	Product         *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price"`
}

// ShipmentStatus represents the delivery status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusInTransit ShipmentStatus = "In Transit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusCancelled ShipmentStatus = "Cancelled"
)

// IsValid checks if the ShipmentStatus is a known status
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusInTransit, ShipmentStatusDelivered, ShipmentStatusCancelled:
		return true
	}
	return false
}

// Shipment tracks the delivery of goods to or from a warehouse
type Shipment struct {
	BaseModel
	ShipmentDate   time.Time      `gorm:"type:date;not null;column:shipment_date"`
	Carrier        string         `gorm:"type:varchar(255)"`
	TrackingNumber string         `gorm:"type:varchar(255);column:tracking_number;index"`
	Status         ShipmentStatus `gorm:"type:varchar(50);not null;default:'In Transit';index"`
}

// ShipmentDetail represents one product line of a shipment. It may reference
// the purchase order or customer order it fulfils; both are optional.
type ShipmentDetail struct {
	BaseModel
	ShipmentID      uuid.UUID      `gorm:"type:uuid;not null;column:shipment_id;index"`
	Shipment        *Shipment      `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	OrderID         *uuid.UUID     `gorm:"type:uuid;column:order_id"`
	Order           *Order         `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
	CustomerOrderID *uuid.UUID     `gorm:"type:uuid;column:customer_order_id"`
	CustomerOrder   *CustomerOrder `gorm:"foreignKey:CustomerOrderID;constraint:OnDelete:SET NULL"`
	ProductID       uuid.UUID      `gorm:"type:uuid;not null;column:product_id"`
	Product         *Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity        int            `gorm:"not null"`
}

// StockAdjustment records a manual correction to product stock in a warehouse.
// Quantity is a signed delta.
type StockAdjustment struct {
	BaseModel
	ProductID      uuid.UUID  `gorm:"type:uuid;not null;column:product_id;index"`
	Product        *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	WarehouseID    uuid.UUID  `gorm:"type:uuid;not null;column:warehouse_id;index"`
	Warehouse      *Warehouse `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	AdjustmentDate time.Time  `gorm:"type:date;not null;column:adjustment_date"`
	Quantity       int        `gorm:"not null"`
	Reason         string     `gorm:"type:varchar(255)"`
}

// TransactionType classifies an inventory transaction as inbound or outbound
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "IN"
	TransactionTypeOut TransactionType = "OUT"
)

// IsValid checks if the TransactionType is a known type
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIn || t == TransactionTypeOut
}

// InventoryTransaction traces stock movement in and out of a warehouse
type InventoryTransaction struct {
	BaseModel
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;column:product_id;index"`
	Product         *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;column:warehouse_id;index"`
	Warehouse       *Warehouse      `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	Quantity        int             `gorm:"not null"`
	TransactionType TransactionType `gorm:"type:varchar(50);not null;column:transaction_type;index"`
	TransactionDate time.Time       `gorm:"not null;column:transaction_date"`
}

// SalesTransaction records the sale of a product to a customer
type SalesTransaction struct {
	BaseModel
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;column:product_id;index"`
	Product         *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;column:customer_id;index"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Quantity        int             `gorm:"not null"`
	TransactionDate time.Time       `gorm:"not null;column:transaction_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;column:total_amount"`
	Status          string          `gorm:"type:varchar(50);not null;index"`
}

// Task represents a follow-up item assigned to a user
type Task struct {
	BaseModel
	Title        string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	DueDate      time.Time `gorm:"not null;column:due_date"`
	Completed    bool      `gorm:"not null;default:false"`
	AssignedToID uuid.UUID `gorm:"type:uuid;not null;column:assigned_to_id;index"`
	AssignedTo   *User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE"`
}

// Event represents a scheduled event users can participate in
type Event struct {
	BaseModel
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	StartTime    time.Time `gorm:"not null;column:start_time"`
	EndTime      time.Time `gorm:"not null;column:end_time"`
	Location     string    `gorm:"type:varchar(255)"`
	Participants []User    `gorm:"many2many:event_participants"`
}

// AuditAction classifies what an audit log entry records
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog is an append-only record of a modifying API request
type AuditLog struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	UserID      *uuid.UUID  `gorm:"type:uuid;column:user_id;index"`
	Username    string      `gorm:"type:varchar(255)"`
	Action      AuditAction `gorm:"type:varchar(50);not null;index"`
	EntityType  string      `gorm:"type:varchar(50);not null;column:entity_type;index"`
	EntityID    *uuid.UUID  `gorm:"type:uuid;column:entity_id"`
	NewValues   string      `gorm:"type:text;column:new_values"`
	IPAddress   string      `gorm:"type:varchar(64);column:ip_address"`
	UserAgent   string      `gorm:"type:text;column:user_agent"`
	RequestID   string      `gorm:"type:varchar(100);column:request_id"`
	PerformedAt time.Time   `gorm:"not null;column:performed_at;index"`
	CreatedAt   time.Time   `gorm:"not null"`
}

// BeforeCreate assigns a UUID so the model works on both postgres and sqlite
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
