// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record at the centre of the system. It carries the
// account identity together with the secret material the session lifecycle
// manipulates: the password hash and the hash of the currently active refresh
// token.
type User struct {
	ID           uuid.UUID // The unique identifier for the user; never reused.
	Email        string    // Login identifier; unique, stored case-sensitive.
	UserName     string    // Display name chosen at signup.
	PasswordHash string    // Argon2id hash of the password; never empty once the user exists.
	// RefreshTokenHash holds the argon2id hash of the active refresh token.
	// nil means the user has no active session (logged out).
	RefreshTokenHash *string
	Role             Role
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasActiveSession reports whether a refresh-token hash is currently stored.
func (u *User) HasActiveSession() bool {
	return u.RefreshTokenHash != nil
}

// Sanitized returns a copy of the user with all secret material stripped.
// Responses built from it can never leak a hash.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""
	clone.RefreshTokenHash = nil

	return &clone
}
