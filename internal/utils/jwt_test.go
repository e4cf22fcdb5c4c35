package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "Admin", 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), tok.Exp, 5*time.Second)

	claims, err := VerifyAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "Admin", claims.Role)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	// A negative TTL produces a token whose exp is already in the past.
	tok, err := NewAccessToken(testSecret, 7, "User", -1)
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, tok.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 7, "User", 1)
	require.NoError(t, err)

	_, err = VerifyAccessToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_Malformed(t *testing.T) {
	_, err := VerifyAccessToken(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  1,
		"role": "Admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_StringSubject(t *testing.T) {
	// Some issuers encode the subject as a string; both forms verify.
	claims := jwt.MapClaims{
		"sub":  "42",
		"role": "User",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := VerifyAccessToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.UserID)
	assert.Equal(t, "User", got.Role)
}

func TestVerifyAccessToken_MissingRole(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
