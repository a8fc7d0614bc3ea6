package postgres

import (
	"context"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// menuItemRepository implements the repository.MenuItemRepository interface using GORM.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// FindByID retrieves a single menu item by its unique ID.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&itemM), nil
}

// ListByRestaurant retrieves all menu items belonging to a restaurant, newest first.
func (repo *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemMs []*model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items by restaurant")
	}

	return toMenuItemDomains(itemMs), nil
}

// ListAll retrieves every menu item, newest first.
func (repo *menuItemRepository) ListAll(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemMs []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return toMenuItemDomains(itemMs), nil
}

// Create persists a new menu item.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required menu item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing menu item row.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":   item.Name,
			"rating": item.Rating,
			"review": item.Review,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// Delete removes a menu item by ID.
func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// AddFavourite records that the user favourited the menu item.
func (repo *menuItemRepository) AddFavourite(ctx context.Context, userID, menuItemID uuid.UUID) error {
	favourite := &model.UserFavouriteMenuItemModel{
		UserID:     userID,
		MenuItemID: menuItemID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favourite).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to favourite menu item")
	}

	return nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Rating:       data.Rating,
		Review:       data.Review,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toMenuItemDomains(data []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Rating:       data.Rating,
		Review:       data.Review,
	}
}
