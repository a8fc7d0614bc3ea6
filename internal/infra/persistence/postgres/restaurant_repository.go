package postgres

import (
	"context"
	"strings"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tagSeparator = ","

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindByID retrieves a restaurant with its menu items preloaded.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("MenuItems").
		Where("id = ?", id).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// List retrieves restaurants matching the query, newest first.
func (repo *restaurantRepository) List(ctx context.Context, query repository.RestaurantQuery) ([]*entity.Restaurant, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Preload("MenuItems").
		Order("created_at DESC")

	if query.OwnerID != uuid.Nil {
		tx = tx.Where("user_id = ?", query.OwnerID)
	}
	if query.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.Category != "" {
		tx = tx.Where("categories ILIKE ?", "%"+query.Category+"%")
	}
	if query.Feature != "" {
		tx = tx.Where("features ILIKE ?", "%"+query.Feature+"%")
	}
	if query.Location != "" {
		tx = tx.Where("location ILIKE ?", "%"+query.Location+"%")
	}
	if query.MinPrice != 0 || query.MaxPrice != 0 {
		tx = tx.Where("price >= ? AND price <= ?", query.MinPrice, query.MaxPrice)
	}

	var restaurantMs []*model.RestaurantModel
	if err := tx.Find(&restaurantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for _, restaurantM := range restaurantMs {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// Create persists a new restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Omit("MenuItems").Create(restaurantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("restaurant owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies an existing restaurant row.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurantM.ID).
		Updates(map[string]any{
			"name":       restaurantM.Name,
			"location":   restaurantM.Location,
			"price":      restaurantM.Price,
			"rating":     restaurantM.Rating,
			"review":     restaurantM.Review,
			"features":   restaurantM.Features,
			"categories": restaurantM.Categories,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// Delete removes a restaurant by ID.
func (repo *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RestaurantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// AddFavourite records that the user favourited the restaurant. Conflicting
// inserts are ignored so re-favouriting stays idempotent.
func (repo *restaurantRepository) AddFavourite(ctx context.Context, userID, restaurantID uuid.UUID) error {
	favourite := &model.UserFavouriteRestaurantModel{
		UserID:       userID,
		RestaurantID: restaurantID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favourite).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to favourite restaurant")
	}

	return nil
}

// FavouriteRestaurantIDs returns the set of restaurant IDs the user has favourited.
func (repo *restaurantRepository) FavouriteRestaurantIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.UserFavouriteRestaurantModel{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favourite restaurants")
	}

	favourites := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		favourites[id] = struct{}{}
	}

	return favourites, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	menuItems := make([]*entity.MenuItem, 0, len(data.MenuItems))
	for _, itemM := range data.MenuItems {
		menuItems = append(menuItems, toMenuItemDomain(itemM))
	}

	return &entity.Restaurant{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Location:   data.Location,
		Price:      data.Price,
		Rating:     data.Rating,
		Review:     data.Review,
		Features:   splitTags(data.Features),
		Categories: splitTags(data.Categories),
		MenuItems:  menuItems,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Location:   data.Location,
		Price:      data.Price,
		Rating:     data.Rating,
		Review:     data.Review,
		Features:   joinTags(data.Features),
		Categories: joinTags(data.Categories),
	}
}

func splitTags(joined string) []string {
	if joined == "" {
		return nil
	}

	return strings.Split(joined, tagSeparator)
}

func joinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}
