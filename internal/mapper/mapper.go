package mapper

import (
	"encoding/json"

	"github.com/stockflow/inventory-api/internal/domain"
)

// UserToDTO converts a user model to its DTO representation
func UserToDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt: user.UpdatedAt.Format(domain.TimeFormat),
	}
}

// UsersToDTOs converts a slice of user models to DTOs
func UsersToDTOs(users []domain.User) []domain.UserDTO {
	dtos := make([]domain.UserDTO, len(users))
	for i := range users {
		dtos[i] = UserToDTO(&users[i])
	}
	return dtos
}

// ProductToDTO converts a product model to its DTO representation
func ProductToDTO(product *domain.Product) domain.ProductDTO {
	return domain.ProductDTO{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Category:     product.Category,
		UnitPrice:    product.UnitPrice,
		ReorderLevel: product.ReorderLevel,
		CreatedAt:    product.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:    product.UpdatedAt.Format(domain.TimeFormat),
	}
}

// ProductsToDTOs converts a slice of product models to DTOs
func ProductsToDTOs(products []domain.Product) []domain.ProductDTO {
	dtos := make([]domain.ProductDTO, len(products))
	for i := range products {
		dtos[i] = ProductToDTO(&products[i])
	}
	return dtos
}

// SupplierToDTO converts a supplier model to its DTO representation
func SupplierToDTO(supplier *domain.Supplier) domain.SupplierDTO {
	return domain.SupplierDTO{
		ID:          supplier.ID,
		Name:        supplier.Name,
		ContactName: supplier.ContactName,
		Address:     supplier.Address,
		City:        supplier.City,
		PostalCode:  supplier.PostalCode,
		Country:     supplier.Country,
		Phone:       supplier.Phone,
		CreatedAt:   supplier.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:   supplier.UpdatedAt.Format(domain.TimeFormat),
	}
}

// SuppliersToDTOs converts a slice of supplier models to DTOs
func SuppliersToDTOs(suppliers []domain.Supplier) []domain.SupplierDTO {
	dtos := make([]domain.SupplierDTO, len(suppliers))
	for i := range suppliers {
		dtos[i] = SupplierToDTO(&suppliers[i])
	}
	return dtos
}

// CustomerToDTO converts a customer model to its DTO representation
func CustomerToDTO(customer *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:          customer.ID,
		Name:        customer.Name,
		ContactName: customer.ContactName,
		Address:     customer.Address,
		City:        customer.City,
		PostalCode:  customer.PostalCode,
		Country:     customer.Country,
		Phone:       customer.Phone,
		CreatedAt:   customer.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:   customer.UpdatedAt.Format(domain.TimeFormat),
	}
}

// CustomersToDTOs converts a slice of customer models to DTOs
func CustomersToDTOs(customers []domain.Customer) []domain.CustomerDTO {
	dtos := make([]domain.CustomerDTO, len(customers))
	for i := range customers {
		dtos[i] = CustomerToDTO(&customers[i])
	}
	return dtos
}

// ProductSupplierToDTO converts a product-supplier link to its DTO representation
func ProductSupplierToDTO(link *domain.ProductSupplier) domain.ProductSupplierDTO {
	dto := domain.ProductSupplierDTO{
		ID:         link.ID,
		ProductID:  link.ProductID,
		SupplierID: link.SupplierID,
		CreatedAt:  link.CreatedAt.Format(domain.TimeFormat),
	}
	if link.Product != nil {
		dto.ProductName = link.Product.Name
	}
	if link.Supplier != nil {
		dto.SupplierName = link.Supplier.Name
	}
	return dto
}

// ProductSuppliersToDTOs converts a slice of product-supplier links to DTOs
func ProductSuppliersToDTOs(links []domain.ProductSupplier) []domain.ProductSupplierDTO {
	dtos := make([]domain.ProductSupplierDTO, len(links))
	for i := range links {
		dtos[i] = ProductSupplierToDTO(&links[i])
	}
	return dtos
}

// WarehouseToDTO converts a warehouse model to its DTO representation
func WarehouseToDTO(warehouse *domain.Warehouse) domain.WarehouseDTO {
	return domain.WarehouseDTO{
		ID:        warehouse.ID,
		Name:      warehouse.Name,
		Location:  warehouse.Location,
		CreatedAt: warehouse.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt: warehouse.UpdatedAt.Format(domain.TimeFormat),
	}
}

// WarehousesToDTOs converts a slice of warehouse models to DTOs
func WarehousesToDTOs(warehouses []domain.Warehouse) []domain.WarehouseDTO {
	dtos := make([]domain.WarehouseDTO, len(warehouses))
	for i := range warehouses {
		dtos[i] = WarehouseToDTO(&warehouses[i])
	}
	return dtos
}

// InventoryToDTO converts an inventory row to its DTO representation
func InventoryToDTO(inv *domain.Inventory) domain.InventoryDTO {
	dto := domain.InventoryDTO{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		LastUpdated: inv.LastUpdated.Format(domain.TimeFormat),
		CreatedAt:   inv.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:   inv.UpdatedAt.Format(domain.TimeFormat),
	}
	if inv.Product != nil {
		dto.ProductName = inv.Product.Name
	}
	if inv.Warehouse != nil {
		dto.WarehouseName = inv.Warehouse.Name
	}
	return dto
}

// InventoriesToDTOs converts a slice of inventory rows to DTOs
func InventoriesToDTOs(rows []domain.Inventory) []domain.InventoryDTO {
	dtos := make([]domain.InventoryDTO, len(rows))
	for i := range rows {
		dtos[i] = InventoryToDTO(&rows[i])
	}
	return dtos
}

// OrderToDTO converts an order model to its DTO representation
func OrderToDTO(order *domain.Order) domain.OrderDTO {
	dto := domain.OrderDTO{
		ID:         order.ID,
		OrderDate:  order.OrderDate.Format(domain.DateFormat),
		SupplierID: order.SupplierID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:  order.UpdatedAt.Format(domain.TimeFormat),
	}
	if order.Supplier != nil {
		dto.SupplierName = order.Supplier.Name
	}
	return dto
}

// OrdersToDTOs converts a slice of order models to DTOs
func OrdersToDTOs(orders []domain.Order) []domain.OrderDTO {
	dtos := make([]domain.OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = OrderToDTO(&orders[i])
	}
	return dtos
}

// OrderDetailToDTO converts an order line to its DTO representation
func OrderDetailToDTO(detail *domain.OrderDetail) domain.OrderDetailDTO {
	dto := domain.OrderDetailDTO{
		ID:        detail.ID,
		OrderID:   detail.OrderID,
		ProductID: detail.ProductID,
		Quantity:  detail.Quantity,
		UnitPrice: detail.UnitPrice,
		CreatedAt: detail.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt: detail.UpdatedAt.Format(domain.TimeFormat),
	}
	if detail.Product != nil {
		dto.ProductName = detail.Product.Name
	}
	return dto
}

// OrderDetailsToDTOs converts a slice of order lines to DTOs
func OrderDetailsToDTOs(details []domain.OrderDetail) []domain.OrderDetailDTO {
	dtos := make([]domain.OrderDetailDTO, len(details))
	for i := range details {
		dtos[i] = OrderDetailToDTO(&details[i])
	}
	return dtos
}

// CustomerOrderToDTO converts a customer order model to its DTO representation
func CustomerOrderToDTO(order *domain.CustomerOrder) domain.CustomerOrderDTO {
	dto := domain.CustomerOrderDTO{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		OrderDate:  order.OrderDate.Format(domain.DateFormat),
		Status:     order.Status,
		CreatedAt:  order.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:  order.UpdatedAt.Format(domain.TimeFormat),
	}
	if order.Customer != nil {
		dto.CustomerName = order.Customer.Name
	}
	return dto
}

// CustomerOrdersToDTOs converts a slice of customer order models to DTOs
func CustomerOrdersToDTOs(orders []domain.CustomerOrder) []domain.CustomerOrderDTO {
	dtos := make([]domain.CustomerOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = CustomerOrderToDTO(&orders[i])
	}
	return dtos
}

// CustomerOrderDetailToDTO converts a customer order line to its DTO representation
func CustomerOrderDetailToDTO(detail *domain.CustomerOrderDetail) domain.CustomerOrderDetailDTO {
	dto := domain.CustomerOrderDetailDTO{
		ID:              detail.ID,
		CustomerOrderID: detail.CustomerOrderID,
		ProductID:       detail.ProductID,
		Quantity:        detail.Quantity,
		UnitPrice:       detail.UnitPrice,
		CreatedAt:       detail.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:       detail.UpdatedAt.Format(domain.TimeFormat),
	}
	if detail.Product != nil {
		dto.ProductName = detail.Product.Name
	}
	return dto
}

// CustomerOrderDetailsToDTOs converts a slice of customer order lines to DTOs
func CustomerOrderDetailsToDTOs(details []domain.CustomerOrderDetail) []domain.CustomerOrderDetailDTO {
	dtos := make([]domain.CustomerOrderDetailDTO, len(details))
	for i := range details {
		dtos[i] = CustomerOrderDetailToDTO(&details[i])
	}
	return dtos
}

// ShipmentToDTO converts a shipment model to its DTO representation
func ShipmentToDTO(shipment *domain.Shipment) domain.ShipmentDTO {
	return domain.ShipmentDTO{
		ID:             shipment.ID,
		ShipmentDate:   shipment.ShipmentDate.Format(domain.DateFormat),
		Carrier:        shipment.Carrier,
		TrackingNumber: shipment.TrackingNumber,
		Status:         shipment.Status,
		CreatedAt:      shipment.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:      shipment.UpdatedAt.Format(domain.TimeFormat),
	}
}

// ShipmentsToDTOs converts a slice of shipment models to DTOs
func ShipmentsToDTOs(shipments []domain.Shipment) []domain.ShipmentDTO {
	dtos := make([]domain.ShipmentDTO, len(shipments))
	for i := range shipments {
		dtos[i] = ShipmentToDTO(&shipments[i])
	}
	return dtos
}

// ShipmentDetailToDTO converts a shipment line to its DTO representation
func ShipmentDetailToDTO(detail *domain.ShipmentDetail) domain.ShipmentDetailDTO {
	dto := domain.ShipmentDetailDTO{
		ID:              detail.ID,
		ShipmentID:      detail.ShipmentID,
		OrderID:         detail.OrderID,
		CustomerOrderID: detail.CustomerOrderID,
		ProductID:       detail.ProductID,
		Quantity:        detail.Quantity,
		CreatedAt:       detail.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:       detail.UpdatedAt.Format(domain.TimeFormat),
	}
	if detail.Product != nil {
		dto.ProductName = detail.Product.Name
	}
	return dto
}

// ShipmentDetailsToDTOs converts a slice of shipment lines to DTOs
func ShipmentDetailsToDTOs(details []domain.ShipmentDetail) []domain.ShipmentDetailDTO {
	dtos := make([]domain.ShipmentDetailDTO, len(details))
	for i := range details {
		dtos[i] = ShipmentDetailToDTO(&details[i])
	}
	return dtos
}

// StockAdjustmentToDTO converts a stock adjustment to its DTO representation
func StockAdjustmentToDTO(adj *domain.StockAdjustment) domain.StockAdjustmentDTO {
	dto := domain.StockAdjustmentDTO{
		ID:             adj.ID,
		ProductID:      adj.ProductID,
		WarehouseID:    adj.WarehouseID,
		AdjustmentDate: adj.AdjustmentDate.Format(domain.DateFormat),
		Quantity:       adj.Quantity,
		Reason:         adj.Reason,
		CreatedAt:      adj.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:      adj.UpdatedAt.Format(domain.TimeFormat),
	}
	if adj.Product != nil {
		dto.ProductName = adj.Product.Name
	}
	if adj.Warehouse != nil {
		dto.WarehouseName = adj.Warehouse.Name
	}
	return dto
}

// StockAdjustmentsToDTOs converts a slice of stock adjustments to DTOs
func StockAdjustmentsToDTOs(adjustments []domain.StockAdjustment) []domain.StockAdjustmentDTO {
	dtos := make([]domain.StockAdjustmentDTO, len(adjustments))
	for i := range adjustments {
		dtos[i] = StockAdjustmentToDTO(&adjustments[i])
	}
	return dtos
}

// InventoryTransactionToDTO converts an inventory transaction to its DTO representation
func InventoryTransactionToDTO(txn *domain.InventoryTransaction) domain.InventoryTransactionDTO {
	dto := domain.InventoryTransactionDTO{
		ID:              txn.ID,
		ProductID:       txn.ProductID,
		WarehouseID:     txn.WarehouseID,
		Quantity:        txn.Quantity,
		TransactionType: txn.TransactionType,
		TransactionDate: txn.TransactionDate.Format(domain.TimeFormat),
		CreatedAt:       txn.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:       txn.UpdatedAt.Format(domain.TimeFormat),
	}
	if txn.Product != nil {
		dto.ProductName = txn.Product.Name
	}
	if txn.Warehouse != nil {
		dto.WarehouseName = txn.Warehouse.Name
	}
	return dto
}

// InventoryTransactionsToDTOs converts a slice of inventory transactions to DTOs
func InventoryTransactionsToDTOs(txns []domain.InventoryTransaction) []domain.InventoryTransactionDTO {
	dtos := make([]domain.InventoryTransactionDTO, len(txns))
	for i := range txns {
		dtos[i] = InventoryTransactionToDTO(&txns[i])
	}
	return dtos
}

// SalesTransactionToDTO converts a sales transaction to its DTO representation
func SalesTransactionToDTO(txn *domain.SalesTransaction) domain.SalesTransactionDTO {
	dto := domain.SalesTransactionDTO{
		ID:              txn.ID,
		ProductID:       txn.ProductID,
		CustomerID:      txn.CustomerID,
		Quantity:        txn.Quantity,
		TransactionDate: txn.TransactionDate.Format(domain.TimeFormat),
		TotalAmount:     txn.TotalAmount,
		Status:          txn.Status,
		CreatedAt:       txn.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:       txn.UpdatedAt.Format(domain.TimeFormat),
	}
	if txn.Product != nil {
		dto.ProductName = txn.Product.Name
	}
	if txn.Customer != nil {
		dto.CustomerName = txn.Customer.Name
	}
	return dto
}

// SalesTransactionsToDTOs converts a slice of sales transactions to DTOs
func SalesTransactionsToDTOs(txns []domain.SalesTransaction) []domain.SalesTransactionDTO {
	dtos := make([]domain.SalesTransactionDTO, len(txns))
	for i := range txns {
		dtos[i] = SalesTransactionToDTO(&txns[i])
	}
	return dtos
}

// TaskToDTO converts a task model to its DTO representation
func TaskToDTO(task *domain.Task) domain.TaskDTO {
	dto := domain.TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		DueDate:      task.DueDate.Format(domain.TimeFormat),
		Completed:    task.Completed,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:    task.UpdatedAt.Format(domain.TimeFormat),
	}
	if task.AssignedTo != nil {
		dto.AssignedToName = task.AssignedTo.FullName()
	}
	return dto
}

// TasksToDTOs converts a slice of task models to DTOs
func TasksToDTOs(tasks []domain.Task) []domain.TaskDTO {
	dtos := make([]domain.TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = TaskToDTO(&tasks[i])
	}
	return dtos
}

// EventToDTO converts an event model to its DTO representation
func EventToDTO(event *domain.Event) domain.EventDTO {
	return domain.EventDTO{
		ID:           event.ID,
		Name:         event.Name,
		Description:  event.Description,
		StartTime:    event.StartTime.Format(domain.TimeFormat),
		EndTime:      event.EndTime.Format(domain.TimeFormat),
		Location:     event.Location,
		Participants: UsersToDTOs(event.Participants),
		CreatedAt:    event.CreatedAt.Format(domain.TimeFormat),
		UpdatedAt:    event.UpdatedAt.Format(domain.TimeFormat),
	}
}

// EventsToDTOs converts a slice of event models to DTOs
func EventsToDTOs(events []domain.Event) []domain.EventDTO {
	dtos := make([]domain.EventDTO, len(events))
	for i := range events {
		dtos[i] = EventToDTO(&events[i])
	}
	return dtos
}

// AuditLogToDTO converts an audit log model to its DTO representation
func AuditLogToDTO(log *domain.AuditLog) domain.AuditLogDTO {
	dto := domain.AuditLogDTO{
		ID:          log.ID,
		UserID:      log.UserID,
		Username:    log.Username,
		Action:      log.Action,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		IPAddress:   log.IPAddress,
		RequestID:   log.RequestID,
		PerformedAt: log.PerformedAt.UTC().Format(domain.TimeFormat),
	}
	if log.NewValues != "" {
		dto.NewValues = json.RawMessage(log.NewValues)
	}
	return dto
}

// AuditLogsToDTOs converts a slice of audit log models to DTOs
func AuditLogsToDTOs(logs []domain.AuditLog) []domain.AuditLogDTO {
	dtos := make([]domain.AuditLogDTO, len(logs))
	for i, log := range logs {
		dtos[i] = AuditLogToDTO(&log)
	}
	return dtos
}
