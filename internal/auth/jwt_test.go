package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := Issue("64f1a2b3c4d5e6f7a8b9c0d1", "alice@x.com", "employee", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Verify(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Issue("64f1a2b3c4d5e6f7a8b9c0d1", "alice@x.com", "employee", testSecret)
	require.NoError(t, err)

	claims, err := Verify(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestVerifyMalformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := Verify(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

func TestVerifyExpired(t *testing.T) {
	expired := tokenClaims{
		UserID: "64f1a2b3c4d5e6f7a8b9c0d1",
		Email:  "alice@x.com",
		Role:   "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingIdentity(t *testing.T) {
	anonymous := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, anonymous).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	unsigned := tokenClaims{
		UserID: "64f1a2b3c4d5e6f7a8b9c0d1",
		Role:   "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, unsigned).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
