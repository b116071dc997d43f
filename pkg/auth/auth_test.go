package auth

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/hacker-chat/config"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
)

func Test_PasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	t.Run("correct password matches", func(t *testing.T) {
		ok, err := ComparePassword("correct horse battery staple", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		ok, err := ComparePassword("incorrect horse", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})

	t.Run("mangled hash is an error", func(t *testing.T) {
		_, err := ComparePassword("whatever", "$argon2id$not-a-hash")
		assert.Error(t, err)
	})
}

func Test_JWT(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiredIn = 15
	cfg.JWT.RefreshExpiredIn = 1440

	userID := uuid.New().String()

	t.Run("round trip", func(t *testing.T) {
		token, refreshToken, err := GenerateJWTToken(userID, "alice", cfg)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.NotEqual(t, token, refreshToken)

		claims, err := ValidateToken(token, cfg)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, _, err := GenerateJWTToken(userID, "alice", cfg)
		require.NoError(t, err)

		other := &config.Config{}
		other.JWT.Secret = "different-secret"

		_, err = ValidateToken(token, other)
		assert.Equal(t, appErrors.ErrInvalidToken, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := &config.Config{}
		expired.JWT.Secret = cfg.JWT.Secret
		expired.JWT.ExpiredIn = -1
		expired.JWT.RefreshExpiredIn = -1

		token, _, err := GenerateJWTToken(userID, "alice", expired)
		require.NoError(t, err)

		_, err = ValidateToken(token, cfg)
		assert.Equal(t, appErrors.ErrInvalidToken, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", cfg)
		assert.Equal(t, appErrors.ErrInvalidToken, err)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID:   userID,
			Username: "alice",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateToken(unsigned, cfg)
		assert.Equal(t, appErrors.ErrInvalidToken, err)
	})
}
