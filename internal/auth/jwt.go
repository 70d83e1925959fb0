package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the validity window of issued tokens.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for every verification failure — bad signature,
// malformed token, expiry, missing claims. Callers must not distinguish the
// cause to the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the verified identity of a caller. It is produced only by
// Verify; nothing else in the service decodes tokens or builds one ad hoc.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 token embedding the user's id, email and role.
func Issue(userID, email, role, secret string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token, collapsing every failure to
// ErrInvalidToken.
func Verify(tokenString, secret string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
