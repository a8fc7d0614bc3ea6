package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by both token kinds.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the user's UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenPair bundles the two credentials issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService generates and validates the signed token pair. Access and
// refresh tokens are signed with separate secrets and have independent
// lifetimes; generation of the two is order-independent.
type TokenService interface {
	// GenerateTokenPair creates a new access/refresh token pair carrying
	// {sub: userID, email} claims.
	GenerateTokenPair(userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken checks an access token against the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token against the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh-token lifetime.
	RefreshTokenDuration() time.Duration
}
