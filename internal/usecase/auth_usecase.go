// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"savor/internal/domain/entity"
	"savor/internal/domain/service"

	"github.com/google/uuid"
)

// SignUpInput carries the fields collected at registration.
type SignUpInput struct {
	Email           string
	UserName        string
	Password        string
	ConfirmPassword string
}

// CreatedUserSummary is the response shape for a successful signup. It never
// carries secret material.
type CreatedUserSummary struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LogInOutput bundles the issued token pair with the sanitized user record.
type LogInOutput struct {
	Tokens *service.TokenPair
	User   *entity.User
}

// RefreshOutput bundles the rotated token pair with the sanitized user record.
type RefreshOutput struct {
	Tokens *service.TokenPair
	User   *entity.User
}

// AuthUsecase defines the interface for the session-token lifecycle.
type AuthUsecase interface {
	// SignUp registers a new account. A duplicate email yields Conflict.
	SignUp(ctx context.Context, input SignUpInput) (*CreatedUserSummary, error)

	// LogIn verifies the credentials, issues a token pair and stores the hash
	// of the new refresh token.
	LogIn(ctx context.Context, email, password string) (*LogInOutput, error)

	// RefreshTokens rotates the token pair when the provided refresh token
	// matches the stored hash, returning the new pair together with the user
	// record.
	RefreshTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*RefreshOutput, error)

	// UpdatePassword replaces the password hash after verifying the old
	// password. The active refresh token is left untouched.
	UpdatePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error

	// LogOut clears the stored refresh-token hash. Logging out twice is a
	// no-op, not an error.
	LogOut(ctx context.Context, userID uuid.UUID) error
}
