// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a venue reviewed by its owning user. Features and categories
// are free-form tags; price is a rough per-head cost used by the price-bucket
// filters.
type Restaurant struct {
	ID         uuid.UUID
	UserID     uuid.UUID // The user that created (and reviewed) this restaurant.
	Name       string
	Location   string
	Price      int
	Rating     float64
	Review     string
	Features   []string
	Categories []string
	MenuItems  []*MenuItem
	// Favourite marks whether the listing user has favourited this
	// restaurant. Populated on reads, never persisted on the restaurant row.
	Favourite bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerSummary is the slice of a user embedded in restaurant responses.
type OwnerSummary struct {
	ID       uuid.UUID
	UserName string
	Email    string
}
