package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUpdate carries a partial profile edit. Nil fields are left unchanged.
type ProfileUpdate struct {
	UserName *string
	Email    *string
}

// UserUsecase defines the interface for user profile operations.
type UserUsecase interface {
	// UpdateProfile applies a partial edit to the caller's own profile and
	// returns the updated, sanitized record.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*entity.User, error)

	// FetchUserByEmail looks up a user by email and returns the sanitized
	// record.
	FetchUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
