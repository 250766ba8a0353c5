package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, expiresAt, err := svc.GenerateAccessToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "user@example.com", claims["email"])

	userID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	refresh, _, err := svc.GenerateRefreshToken(7)
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	access, _, err := svc.GenerateAccessToken(7, "user@example.com")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestParseRefreshToken_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)
	other := NewJWTService("a-different-secret-key", testAccessExp, testRefreshExp)

	refresh, _, err := other.GenerateRefreshToken(7)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(refresh)
	assert.Error(t, err)
}
