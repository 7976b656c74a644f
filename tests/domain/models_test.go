package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockflow/inventory-api/internal/domain"
)

func TestOrder_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status   domain.OrderStatus
		expected bool
	}{
		{domain.OrderStatusPending, true},
		{domain.OrderStatusPlaced, true},
		{domain.OrderStatusShipped, false},
		{domain.OrderStatusDelivered, false},
		{domain.OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			order := &domain.Order{Status: tt.status}
			assert.Equal(t, tt.expected, order.CanBeCancelled())
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, domain.OrderStatusPending.IsValid())
	assert.True(t, domain.OrderStatusDelivered.IsValid())
	assert.False(t, domain.OrderStatus("Lost").IsValid())
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleAdministrator.IsValid())
	assert.True(t, domain.RoleStandardUser.IsValid())
	assert.False(t, domain.UserRole("Wizard").IsValid())
}

func TestUser_FullName(t *testing.T) {
	user := &domain.User{FirstName: "John", LastName: "Smith"}
	assert.Equal(t, "John Smith", user.FullName())

	empty := &domain.User{Username: "jsmith"}
	assert.Equal(t, "jsmith", empty.FullName())
}
