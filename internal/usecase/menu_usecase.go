package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuItemInput carries the fields for creating a menu-item review.
type MenuItemInput struct {
	RestaurantID uuid.UUID
	Name         string
	Rating       float64
	Review       string
}

// MenuItemUpdate carries a partial edit. Nil fields are left unchanged.
type MenuItemUpdate struct {
	Name   *string
	Rating *float64
	Review *string
}

// MenuUsecase defines the interface for menu-item review operations.
type MenuUsecase interface {
	AddMenuItem(ctx context.Context, input MenuItemInput) (*entity.MenuItem, error)
	EditMenuItem(ctx context.Context, id uuid.UUID, update MenuItemUpdate) (*entity.MenuItem, error)
	FetchMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
	FetchRestaurantMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)
	FetchMenuItems(ctx context.Context) ([]*entity.MenuItem, error)
	AddFavouriteMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) error
}
