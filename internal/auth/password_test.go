package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("rahasia123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	require.NoError(t, ComparePassword(hash, "rahasia123"))
}

func TestComparePasswordRejectsMutations(t *testing.T) {
	password := "rahasia123"
	hash, err := HashPassword(password, 4)
	require.NoError(t, err)

	// every single-character mutation must fail verification
	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i]++
		assert.Error(t, ComparePassword(hash, string(mutated)))
	}
}

func TestHashPasswordDefaultsCost(t *testing.T) {
	hash, err := HashPassword("rahasia123", 0)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, "rahasia123"))
}
