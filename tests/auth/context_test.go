package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
)

func TestUserContext_RoundTrip(t *testing.T) {
	userCtx := &auth.UserContext{
		UserID:   uuid.New(),
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Role:     domain.RoleAdministrator,
	}

	ctx := auth.WithUserContext(context.Background(), userCtx)

	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userCtx, got)
}

func TestFromContext_Missing(t *testing.T) {
	got, ok := auth.FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestUserContext_HasRole(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.UserRole
		check    domain.UserRole
		expected bool
	}{
		{
			name:     "matching role",
			role:     domain.RoleInventoryManager,
			check:    domain.RoleInventoryManager,
			expected: true,
		},
		{
			name:     "different role",
			role:     domain.RoleStandardUser,
			check:    domain.RoleInventoryManager,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userCtx := &auth.UserContext{Role: tt.role}
			assert.Equal(t, tt.expected, userCtx.HasRole(tt.check))
		})
	}
}

func TestUserContext_IsAdministrator(t *testing.T) {
	admin := &auth.UserContext{Role: domain.RoleAdministrator}
	assert.True(t, admin.IsAdministrator())

	user := &auth.UserContext{Role: domain.RoleStandardUser}
	assert.False(t, user.IsAdministrator())
}
