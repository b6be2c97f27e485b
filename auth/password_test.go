package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("senha123")
	require.NoError(t, err)
	second, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("senha123", first))
	assert.True(t, CheckPassword("senha123", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("senha123", hash))
	assert.False(t, CheckPassword("senha124", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("senha123", ""))
	assert.False(t, CheckPassword("senha123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("senha123", "$2a$garbage"))
}
