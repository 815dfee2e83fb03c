package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", "jane@x.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("u1", "jane@x.com", "")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "jane@x.com", "secret")
	require.NoError(t, err)

	_, err = VerifyToken(token, "other")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	claims := Claims{
		Email: "jane@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = VerifyToken(token, "secret")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(token, "secret")
	assert.Error(t, err)
}
