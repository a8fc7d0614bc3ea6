// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantQuery narrows restaurant listings. Zero values mean "no filter".
type RestaurantQuery struct {
	OwnerID  uuid.UUID // Only restaurants created by this user.
	Search   string    // Substring match on the restaurant name.
	Category string    // Substring match within the categories tags.
	Feature  string    // Substring match within the features tags.
	Location string    // Substring match on the location.
	// MinPrice/MaxPrice bound the price column; both zero disables the bound.
	MinPrice int
	MaxPrice int
}

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// FindByID retrieves a restaurant with its menu items preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// List retrieves restaurants matching the query, newest first, with menu
	// items preloaded.
	List(ctx context.Context, query RestaurantQuery) ([]*entity.Restaurant, error)

	// Create persists a new restaurant.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes a restaurant by ID. Returns ErrRestaurantNotFound when
	// no row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFavourite records that the user favourited the restaurant.
	// Re-favouriting is a no-op.
	AddFavourite(ctx context.Context, userID, restaurantID uuid.UUID) error

	// FavouriteRestaurantIDs returns the set of restaurant IDs the user has
	// favourited.
	FavouriteRestaurantIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}
