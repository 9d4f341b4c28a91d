package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	require.NoError(t, ComparePassword(hash, "pw123"))
	require.Error(t, ComparePassword(hash, "pw124"))
}

func TestHashPasswordSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	// per-record salt: same input, different digests, both verifiable
	require.NotEqual(t, first, second)
	require.NoError(t, ComparePassword(first, "pw123"))
	require.NoError(t, ComparePassword(second, "pw123"))
}
