package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken(42, "alice")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return JwtKey(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
}
