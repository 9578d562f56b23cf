package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionClaims(ttl time.Duration) SessionClaims {
	now := time.Now()
	return SessionClaims{
		UserID: "user-123",
		Email:  "alice@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   "user-123",
			Issuer:    "test",
			Audience:  jwt.ClaimStrings{"test"},
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	a := NewJWTAuthenticator("test", "test")

	tokenStr, err := a.GenerateToken(sessionClaims(time.Hour), "secret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims := &SessionClaims{}
	_, err = a.ValidateTokenWithClaims(tokenStr, "secret", claims)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
}

func TestValidateToken_Expired(t *testing.T) {
	a := NewJWTAuthenticator("test", "test")

	tokenStr, err := a.GenerateToken(sessionClaims(-time.Minute), "secret")
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(tokenStr, "secret", &SessionClaims{})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	a := NewJWTAuthenticator("test", "test")

	tokenStr, err := a.GenerateToken(sessionClaims(time.Hour), "right-secret")
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(tokenStr, "wrong-secret", &SessionClaims{})
	assert.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issued := NewJWTAuthenticator("test", "test")
	validating := NewJWTAuthenticator("other", "other")

	tokenStr, err := issued.GenerateToken(sessionClaims(time.Hour), "secret")
	require.NoError(t, err)

	_, err = validating.ValidateTokenWithClaims(tokenStr, "secret", &SessionClaims{})
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	a := NewJWTAuthenticator("test", "test")

	_, err := a.ValidateTokenWithClaims("not.a.jwt", "secret", &SessionClaims{})
	assert.Error(t, err)
}
