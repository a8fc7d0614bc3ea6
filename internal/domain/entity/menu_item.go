// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a single reviewed dish belonging to a restaurant.
type MenuItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Rating       float64
	Review       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
