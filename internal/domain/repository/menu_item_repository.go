// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the standard operations for menu-item persistence.
type MenuItemRepository interface {
	// FindByID retrieves a single menu item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListByRestaurant retrieves all menu items belonging to a restaurant,
	// newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)

	// ListAll retrieves every menu item, newest first.
	ListAll(ctx context.Context) ([]*entity.MenuItem, error)

	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// Update modifies an existing menu item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item by ID. Returns ErrMenuItemNotFound when no
	// row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFavourite records that the user favourited the menu item.
	AddFavourite(ctx context.Context, userID, menuItemID uuid.UUID) error
}
