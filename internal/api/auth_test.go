package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestResolveUserID(t *testing.T) {
	const secret = "test-secret"

	t.Run("no secret configured", func(t *testing.T) {
		assert.Equal(t, DefaultUserID, resolveUserID("", "Bearer whatever"))
	})

	t.Run("no header", func(t *testing.T) {
		assert.Equal(t, DefaultUserID, resolveUserID(secret, ""))
	})

	t.Run("non-bearer header", func(t *testing.T) {
		assert.Equal(t, DefaultUserID, resolveUserID(secret, "Basic abc"))
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, DefaultUserID, resolveUserID(secret, "Bearer not-a-jwt"))
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := signToken(t, "other-secret", "alice")
		assert.Equal(t, DefaultUserID, resolveUserID(secret, "Bearer "+token))
	})

	t.Run("valid token with subject", func(t *testing.T) {
		token := signToken(t, secret, "alice")
		assert.Equal(t, "alice", resolveUserID(secret, "Bearer "+token))
	})

	t.Run("valid token without subject", func(t *testing.T) {
		token := signToken(t, secret, "")
		assert.Equal(t, DefaultUserID, resolveUserID(secret, "Bearer "+token))
	})
}
