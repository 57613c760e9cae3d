package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_Lifecycle(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"), "digest should be self-describing: %s", hash)

	require.True(t, h.Verify("admin123", hash))
	require.False(t, h.Verify("admin124", hash))
	require.False(t, h.Verify("", hash))
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, h.Verify("same-password", first))
	require.True(t, h.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "plain-text", "$2a$10$short", "$9z$10$abcdefghijklmnopqrstuv"} {
		require.False(t, h.Verify("anything", digest), "digest %q", digest)
	}
}

func TestNewPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	require.Equal(t, DefaultBcryptCost, NewPasswordHasher(0).cost)
	require.Equal(t, DefaultBcryptCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	require.Equal(t, 12, NewPasswordHasher(12).cost)
}
