package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Price buckets map the "$" filter shorthand to per-head price ranges.
var priceBuckets = map[string][2]int{
	"$":   {0, 10},
	"$$":  {11, 30},
	"$$$": {31, 100},
}

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddRestaurant creates a restaurant review owned by the given user.
func (srv *restaurantService) AddRestaurant(ctx context.Context, userID uuid.UUID, input usecase.RestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Adding restaurant", slog.Any("user_id", userID), slog.String("name", input.Name))

	restaurant := &entity.Restaurant{
		UserID:     userID,
		Name:       input.Name,
		Location:   input.Location,
		Price:      input.Price,
		Rating:     input.Rating,
		Review:     input.Review,
		Features:   input.Features,
		Categories: input.Categories,
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		srv.log(ctx).Error("Failed to create restaurant", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	return restaurant, nil
}

// EditRestaurant applies a partial update to an existing restaurant.
func (srv *restaurantService) EditRestaurant(ctx context.Context, id uuid.UUID, update usecase.RestaurantUpdate) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Editing restaurant", slog.Any("restaurant_id", id))

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	if update.Name != nil {
		restaurant.Name = *update.Name
	}
	if update.Location != nil {
		restaurant.Location = *update.Location
	}
	if update.Price != nil {
		restaurant.Price = *update.Price
	}
	if update.Rating != nil {
		restaurant.Rating = *update.Rating
	}
	if update.Review != nil {
		restaurant.Review = *update.Review
	}
	if update.Features != nil {
		restaurant.Features = update.Features
	}
	if update.Categories != nil {
		restaurant.Categories = update.Categories
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}
		srv.log(ctx).Error("Failed to update restaurant", slog.Any("error", err), slog.Any("restaurant_id", id))

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

// FetchRestaurant retrieves a restaurant with its owner summary attached.
func (srv *restaurantService) FetchRestaurant(ctx context.Context, id uuid.UUID) (*usecase.RestaurantDetail, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	detail := &usecase.RestaurantDetail{
		Restaurant:    restaurant,
		MenuItemCount: len(restaurant.MenuItems),
	}

	owner, err := srv.userRepo.FindByID(ctx, restaurant.UserID)
	if err == nil {
		detail.Owner = &entity.OwnerSummary{
			ID:       owner.ID,
			UserName: owner.UserName,
			Email:    owner.Email,
		}
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find restaurant owner")
	}

	return detail, nil
}

// DeleteRestaurant removes a restaurant review.
func (srv *restaurantService) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting restaurant", slog.Any("restaurant_id", id))

	if err := srv.restaurantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}
		srv.log(ctx).Error("Failed to delete restaurant", slog.Any("error", err), slog.Any("restaurant_id", id))

		return errors.Wrap(err, "failed to delete restaurant")
	}

	return nil
}

// FetchMyRestaurants lists the user's own restaurants with search and filters
// applied, favourites first.
func (srv *restaurantService) FetchMyRestaurants(ctx context.Context, userID uuid.UUID, filter usecase.RestaurantFilter) ([]*entity.Restaurant, error) {
	query := repository.RestaurantQuery{
		OwnerID:  userID,
		Search:   filter.Search,
		Category: filter.Category,
		Feature:  filter.Feature,
		Location: filter.Location,
	}
	if bounds, ok := priceBuckets[filter.PriceBucket]; ok {
		query.MinPrice = bounds[0]
		query.MaxPrice = bounds[1]
	}

	restaurants, err := srv.restaurantRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	if err := srv.markFavourites(ctx, userID, restaurants); err != nil {
		return nil, err
	}

	return restaurants, nil
}

// FetchRestaurants lists every restaurant, favourites of the calling user first.
func (srv *restaurantService) FetchRestaurants(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.List(ctx, repository.RestaurantQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	if err := srv.markFavourites(ctx, userID, restaurants); err != nil {
		return nil, err
	}

	return restaurants, nil
}

// AddFavouriteRestaurant records the user's favourite.
func (srv *restaurantService) AddFavouriteRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) error {
	srv.log(ctx).Info("Favouriting restaurant", slog.Any("user_id", userID), slog.Any("restaurant_id", restaurantID))

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}

		return errors.Wrap(err, "failed to find restaurant")
	}

	if err := srv.restaurantRepo.AddFavourite(ctx, userID, restaurantID); err != nil {
		srv.log(ctx).Error("Failed to favourite restaurant", slog.Any("error", err))

		return errors.Wrap(err, "failed to favourite restaurant")
	}

	return nil
}

// markFavourites flags the user's favourites and stably moves them to the
// front, keeping the newest-first order within each half.
func (srv *restaurantService) markFavourites(ctx context.Context, userID uuid.UUID, restaurants []*entity.Restaurant) error {
	favourites, err := srv.restaurantRepo.FavouriteRestaurantIDs(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load favourites")
	}

	for _, restaurant := range restaurants {
		_, restaurant.Favourite = favourites[restaurant.ID]
	}

	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Favourite && !restaurants[j].Favourite
	})

	return nil
}
