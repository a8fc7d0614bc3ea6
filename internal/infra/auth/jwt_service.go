package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"savor/config"
	"savor/internal/domain/service"
	"savor/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Hour,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// GenerateTokenPair creates the access and refresh tokens concurrently. Both
// carry the same {sub, email} claims but are signed with separate secrets.
func (s *jwtService) GenerateTokenPair(userID uuid.UUID, email string) (*service.TokenPair, error) {
	pair := &service.TokenPair{}

	var group errgroup.Group
	group.Go(func() error {
		token, err := s.signToken(userID, email, s.accessTTL, s.accessSecret)
		if err != nil {
			return errors.Wrap(err, "sign access token")
		}
		pair.AccessToken = token

		return nil
	})
	group.Go(func() error {
		token, err := s.signToken(userID, email, s.refreshTTL, s.refreshSecret)
		if err != nil {
			return errors.Wrap(err, "sign refresh token")
		}
		pair.RefreshToken = token

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return pair, nil
}

// ValidateAccessToken checks an access token string against the access secret.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.accessSecret)
}

// ValidateRefreshToken checks a refresh token string against the refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, s.refreshSecret)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) signToken(userID uuid.UUID, email string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

func (s *jwtService) parseToken(tokenString, secret string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}
