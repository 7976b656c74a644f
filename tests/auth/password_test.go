package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/inventory-api/internal/auth"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
}

func TestPasswordHasher_CompareMismatch(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	err = hasher.Compare(hash, "wrong password")
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestPasswordHasher_HashesDiffer(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	// An out-of-range cost must still produce a working hasher
	hasher := auth.NewPasswordHasher(99)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "secret123"))
}
