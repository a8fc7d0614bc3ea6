package middleware

import (
	"strings"

	"savor/internal/delivery/http/response"
	"savor/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to read.
const (
	KeyUserID       = "userID"
	KeyRefreshToken = "refreshToken"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's user
// ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		c.Set(KeyUserID, userID)

		return next(c)
	}
}

// AuthenticateRefresh validates the bearer refresh token and stores both the
// caller's user ID and the raw token, which the refresh flow compares against
// the stored hash.
func (m *AuthMiddleware) AuthenticateRefresh(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateRefreshToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired refresh token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		c.Set(KeyUserID, userID)
		c.Set(KeyRefreshToken, tokenString)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}
