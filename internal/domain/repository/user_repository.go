// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// Field names accepted by UserRepository.UpdateField. The authenticator only
// ever mutates these two columns; everything else on the record is immutable
// through this interface.
const (
	FieldPasswordHash     = "password_hash"
	FieldRefreshTokenHash = "refresh_token_hash"
)

// UserProfilePatch is a partial profile edit. Nil fields are left unchanged.
type UserProfilePatch struct {
	UserName *string
	Email    *string
}

// UserRepository is the credential store: it holds per-user secret material
// (password hash and current refresh-token hash) keyed by identity. The store
// applies each call atomically; concurrent updates are last-write-wins.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateField overwrites a single credential field for the given user and
	// returns the updated record. A nil value clears the field. Returns
	// ErrUserNotFound when no record matches the ID.
	UpdateField(ctx context.Context, id uuid.UUID, field string, value *string) (*entity.User, error)

	// UpdateProfile applies a partial profile edit and returns the updated
	// record. Returns ErrUserNotFound when no record matches the ID; changing
	// the email to one already registered yields a conflict.
	UpdateProfile(ctx context.Context, id uuid.UUID, patch UserProfilePatch) (*entity.User, error)
}
