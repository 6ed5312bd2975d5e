package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("abcdef"))
	assert.Error(t, ValidatePassword("abc"))
	assert.Error(t, ValidatePassword(""))
}
