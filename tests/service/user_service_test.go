package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/internal/service"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createUserService(db *gorm.DB) *service.UserService {
	return service.NewUserService(
		repository.NewUserRepository(db),
		auth.NewPasswordHasher(4),
		auth.NewTokenManager("test-secret", "inventory-api", time.Hour),
		zap.NewNop(),
	)
}

func registerTestUser(t *testing.T, svc *service.UserService, username string) *domain.UserDTO {
	t.Helper()
	dto, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	return dto
}

func TestUserService_Register(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	dto, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username:  "jsmith",
		Email:     "jsmith@example.com",
		FirstName: "John",
		LastName:  "Smith",
		Password:  "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "jsmith", dto.Username)
	assert.Equal(t, domain.RoleStandardUser, dto.Role)
	assert.True(t, dto.IsActive)
}

func TestUserService_Register_ExplicitRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	dto, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username: "manager",
		Email:    "manager@example.com",
		Password: "secret-password",
		Role:     domain.RoleInventoryManager,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleInventoryManager, dto.Role)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "secret-password",
		Role:     "Galactic Overlord",
	})

	assert.ErrorIs(t, err, service.ErrInvalidUserRole)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	registerTestUser(t, svc, "jsmith")

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username: "jsmith",
		Email:    "other@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	registerTestUser(t, svc, "jsmith")

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Username: "different",
		Email:    "jsmith@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, service.ErrDuplicateEmail)
}

func TestUserService_Authenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	registerTestUser(t, svc, "jsmith")

	resp, err := svc.Authenticate(context.Background(), &domain.LoginRequest{
		Username: "jsmith",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ExpiresAt)
	assert.Equal(t, "jsmith", resp.User.Username)

	tokens := auth.NewTokenManager("test-secret", "inventory-api", time.Hour)
	userCtx, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userCtx.UserID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	registerTestUser(t, svc, "jsmith")

	_, err := svc.Authenticate(context.Background(), &domain.LoginRequest{
		Username: "jsmith",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	_, err := svc.Authenticate(context.Background(), &domain.LoginRequest{
		Username: "ghost",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_Authenticate_InactiveUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	dto := registerTestUser(t, svc, "jsmith")
	require.NoError(t, db.Model(&domain.User{}).Where("id = ?", dto.ID).Update("is_active", false).Error)

	_, err := svc.Authenticate(context.Background(), &domain.LoginRequest{
		Username: "jsmith",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_DTOOmitsPasswordHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	dto := registerTestUser(t, svc, "jsmith")

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "Password")
}

func TestUserService_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createUserService(db)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
