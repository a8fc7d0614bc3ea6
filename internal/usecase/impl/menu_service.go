package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo       repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	menuRepo repository.MenuItemRepository,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddMenuItem creates a menu-item review under an existing restaurant.
func (srv *menuService) AddMenuItem(ctx context.Context, input usecase.MenuItemInput) (*entity.MenuItem, error) {
	srv.log(ctx).Info("Adding menu item", slog.Any("restaurant_id", input.RestaurantID), slog.String("name", input.Name))

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	item := &entity.MenuItem{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Rating:       input.Rating,
		Review:       input.Review,
	}

	if err := srv.menuRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create menu item", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create menu item")
	}

	return item, nil
}

// EditMenuItem applies a partial update to an existing menu item.
func (srv *menuService) EditMenuItem(ctx context.Context, id uuid.UUID, update usecase.MenuItemUpdate) (*entity.MenuItem, error) {
	srv.log(ctx).Info("Editing menu item", slog.Any("menu_item_id", id))

	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Rating != nil {
		item.Rating = *update.Rating
	}
	if update.Review != nil {
		item.Review = *update.Review
	}

	if err := srv.menuRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}
		srv.log(ctx).Error("Failed to update menu item", slog.Any("error", err), slog.Any("menu_item_id", id))

		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return item, nil
}

// FetchMenuItem retrieves a single menu item.
func (srv *menuService) FetchMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return item, nil
}

// DeleteMenuItem removes a menu-item review.
func (srv *menuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting menu item", slog.Any("menu_item_id", id))

	if err := srv.menuRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}
		srv.log(ctx).Error("Failed to delete menu item", slog.Any("error", err), slog.Any("menu_item_id", id))

		return errors.Wrap(err, "failed to delete menu item")
	}

	return nil
}

// FetchRestaurantMenuItems lists the menu items of one restaurant, newest first.
func (srv *menuService) FetchRestaurantMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	items, err := srv.menuRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// FetchMenuItems lists every menu item, newest first.
func (srv *menuService) FetchMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := srv.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// AddFavouriteMenuItem records the user's favourite.
func (srv *menuService) AddFavouriteMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) error {
	srv.log(ctx).Info("Favouriting menu item", slog.Any("user_id", userID), slog.Any("menu_item_id", menuItemID))

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if _, err := srv.menuRepo.FindByID(ctx, menuItemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound.WrapMessage("menu item does not exist")
		}

		return errors.Wrap(err, "failed to find menu item")
	}

	if err := srv.menuRepo.AddFavourite(ctx, userID, menuItemID); err != nil {
		srv.log(ctx).Error("Failed to favourite menu item", slog.Any("error", err))

		return errors.Wrap(err, "failed to favourite menu item")
	}

	return nil
}
