package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "fittrack-api", time.Hour)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "fittrack-api", -time.Minute)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "fittrack-api", time.Hour)
	verifier := NewTokenManager("secret-b", "fittrack-api", time.Hour)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenManager("test-secret", "someone-else", time.Hour)
	verifier := NewTokenManager("test-secret", "fittrack-api", time.Hour)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "fittrack-api", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tm.Parse(tok)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
