package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.NotContains(t, hash, "secret1")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("secret1", hash))
	require.Error(t, VerifyPassword("wrong", hash))
	require.Error(t, VerifyPassword("", hash))
}
