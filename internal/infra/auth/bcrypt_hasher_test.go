package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("lunch-together")
	require.NoError(t, err)
	assert.NotEqual(t, "lunch-together", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	assert.True(t, hasher.Check("lunch-together", hash))
	assert.False(t, hasher.Check("dinner-alone", hash))
}

func TestBcryptHasher_EmptyInputs(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Hash("")
	assert.Error(t, err)

	assert.False(t, hasher.Check("", "$2a$10$abc"))
	assert.False(t, hasher.Check("secret", ""))
	assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
}
