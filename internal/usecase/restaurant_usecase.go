package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput carries the fields for creating a restaurant review.
type RestaurantInput struct {
	Name       string
	Location   string
	Price      int
	Rating     float64
	Review     string
	Features   []string
	Categories []string
}

// RestaurantUpdate carries a partial edit. Nil fields are left unchanged.
type RestaurantUpdate struct {
	Name       *string
	Location   *string
	Price      *int
	Rating     *float64
	Review     *string
	Features   []string
	Categories []string
}

// RestaurantFilter narrows the owner's restaurant listing. PriceBucket is one
// of "$", "$$", "$$$" and maps to a per-head price range.
type RestaurantFilter struct {
	Search      string
	Category    string
	Feature     string
	Location    string
	PriceBucket string
}

// RestaurantDetail is a single restaurant with its owner summary attached.
type RestaurantDetail struct {
	Restaurant    *entity.Restaurant
	Owner         *entity.OwnerSummary
	MenuItemCount int
}

// RestaurantUsecase defines the interface for restaurant review operations.
type RestaurantUsecase interface {
	AddRestaurant(ctx context.Context, userID uuid.UUID, input RestaurantInput) (*entity.Restaurant, error)
	EditRestaurant(ctx context.Context, id uuid.UUID, update RestaurantUpdate) (*entity.Restaurant, error)
	FetchRestaurant(ctx context.Context, id uuid.UUID) (*RestaurantDetail, error)
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error

	// FetchMyRestaurants lists the user's own restaurants, newest first, with
	// favourited ones sorted to the front.
	FetchMyRestaurants(ctx context.Context, userID uuid.UUID, filter RestaurantFilter) ([]*entity.Restaurant, error)

	// FetchRestaurants lists every restaurant, newest first, with the calling
	// user's favourites sorted to the front.
	FetchRestaurants(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error)

	AddFavouriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error
}
