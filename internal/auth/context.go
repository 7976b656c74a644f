package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/domain"
)

// UserContext holds authenticated user information
type UserContext struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     domain.UserRole
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// HasRole checks if user has a specific role
func (u *UserContext) HasRole(role domain.UserRole) bool {
	return u.Role == role
}

// IsAdministrator checks if user has the Administrator role
func (u *UserContext) IsAdministrator() bool {
	return u.Role == domain.RoleAdministrator
}
