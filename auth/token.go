package auth

import (
	"fmt"
	"slices"
	"time"

	"califica-tu-profe/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "califica-tu-profe"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller extracted from a validated token.
type Identity struct {
	ID      string
	IsAdmin bool
}

// TokenManager signs and validates user tokens with an HMAC secret loaded
// from configuration.
type TokenManager struct {
	key      []byte
	duration time.Duration
}

func NewTokenManager(secret string, duration time.Duration) TokenManager {
	return TokenManager{key: []byte(secret), duration: duration}
}

// Generate creates a signed JWT for a specific user.
func (m TokenManager) Generate(userID string, roles []string) (string, error) {
	now := time.Now()

	claims := &CustomClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// Create the token using the HS256 algorithm (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(m.key)
}

// Validate parses a JWT string, checks signature and expiration, and
// returns the caller identity.
func (m TokenManager) Validate(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.ErrInvalidToken
	}

	return Identity{
		ID:      claims.UserID,
		IsAdmin: slices.Contains(claims.Roles, "admin"),
	}, nil
}
