package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
	"github.com/stockflow/inventory-api/tests/testutil"
)

func createUserAt(t *testing.T, db *gorm.DB, username string, role domain.UserRole, createdAt time.Time) *domain.User {
	t.Helper()
	user := &domain.User{
		BaseModel:    domain.BaseModel{CreatedAt: createdAt},
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "irrelevant",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)

	testutil.CreateTestUser(t, db, "jsmith", domain.RoleStandardUser)

	got, err := repo.GetByUsername(context.Background(), "jsmith")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jsmith@example.com", got.Email)

	missing, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)

	testutil.CreateTestUser(t, db, "jsmith", domain.RoleStandardUser)

	got, err := repo.GetByEmail(context.Background(), "jsmith@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jsmith", got.Username)
}

func TestUserRepository_FirstByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createUserAt(t, db, "worker", domain.RoleStandardUser, base)
	createUserAt(t, db, "second_admin", domain.RoleAdministrator, base.Add(2*time.Hour))
	first := createUserAt(t, db, "first_admin", domain.RoleAdministrator, base.Add(time.Hour))

	got, err := repo.FirstByRole(context.Background(), domain.RoleAdministrator)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Oldest account with the role wins, regardless of insert order
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "first_admin", got.Username)
}

func TestUserRepository_FirstByRole_NoneFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)

	testutil.CreateTestUser(t, db, "worker", domain.RoleStandardUser)

	got, err := repo.FirstByRole(context.Background(), domain.RoleAdministrator)
	require.NoError(t, err)
	assert.Nil(t, got)
}
