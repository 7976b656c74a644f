package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Username:  "jsmith",
		Email:     "jsmith@example.com",
		Role:      domain.RoleInventoryManager,
		IsActive:  true,
	}
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)
	user := testUser()

	token, expiresAt, err := manager.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	userCtx, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, "jsmith", userCtx.Username)
	assert.Equal(t, "jsmith@example.com", userCtx.Email)
	assert.Equal(t, domain.RoleInventoryManager, userCtx.Role)
}

func TestTokenManager_ValidateExpired(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "inventory-api", -time.Minute)

	token, _, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenManager_ValidateWrongSecret(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)
	other := auth.NewTokenManager("other-secret", "inventory-api", time.Hour)

	token, _, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_ValidateWrongIssuer(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)
	other := auth.NewTokenManager("test-secret", "another-service", time.Hour)

	token, _, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_ValidateGarbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)

	_, err := manager.Validate("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
