package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory user repository ---

type fakeUserRepo struct {
	users       map[uuid.UUID]*entity.User
	updateCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

// randomID returns an ID guaranteed not to exist in the store.
func (repo *fakeUserRepo) randomID() uuid.UUID {
	return uuid.New()
}

func (repo *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (repo *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range repo.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	repo.users[user.ID] = &clone

	return nil
}

func (repo *fakeUserRepo) UpdateField(_ context.Context, id uuid.UUID, field string, value *string) (*entity.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	repo.updateCalls++
	switch field {
	case repository.FieldPasswordHash:
		if value != nil {
			user.PasswordHash = *value
		}
	case repository.FieldRefreshTokenHash:
		if value == nil {
			user.RefreshTokenHash = nil
		} else {
			hash := *value
			user.RefreshTokenHash = &hash
		}
	default:
		return nil, fmt.Errorf("unsupported user field: %s", field)
	}
	user.UpdatedAt = time.Now()
	clone := *user

	return &clone, nil
}

func (repo *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, patch repository.UserProfilePatch) (*entity.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if patch.Email != nil {
		for otherID, existing := range repo.users {
			if otherID != id && existing.Email == *patch.Email {
				return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
			}
		}
		user.Email = *patch.Email
	}
	if patch.UserName != nil {
		user.UserName = *patch.UserName
	}
	user.UpdatedAt = time.Now()
	clone := *user

	return &clone, nil
}

// --- cheap hasher ---

// fakeHasher trades the memory-hard derivation for a reversible prefix so the
// service tests stay fast. The real argon2 hasher has its own tests.
type fakeHasher struct{}

func (fakeHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", domainerrors.ErrInvalidInput.WrapMessage("cannot hash an empty secret")
	}

	return "hashed:" + secret, nil
}

func (fakeHasher) Verify(hash, secret string) bool {
	return hash == "hashed:"+secret
}

// --- deterministic token service ---

type fakeTokenService struct {
	issued int
}

func (svc *fakeTokenService) GenerateTokenPair(userID uuid.UUID, email string) (*service.TokenPair, error) {
	svc.issued++

	return &service.TokenPair{
		AccessToken:  fmt.Sprintf("at-%s-%d", userID, svc.issued),
		RefreshToken: fmt.Sprintf("rt-%s-%d", userID, svc.issued),
	}, nil
}

func (svc *fakeTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return claimsFromFakeToken(tokenString, "at-")
}

func (svc *fakeTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return claimsFromFakeToken(tokenString, "rt-")
}

func (svc *fakeTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour * 24 * 7
}

func claimsFromFakeToken(tokenString, prefix string) (*service.Claims, error) {
	if !strings.HasPrefix(tokenString, prefix) {
		return nil, fmt.Errorf("malformed token: %s", tokenString)
	}
	claims := &service.Claims{}
	claims.Subject = strings.TrimSuffix(strings.TrimPrefix(tokenString, prefix), "-1")

	return claims, nil
}

// --- in-memory restaurant repository ---

type fakeRestaurantRepo struct {
	restaurants []*entity.Restaurant
	favourites  map[uuid.UUID]map[uuid.UUID]struct{}
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{favourites: map[uuid.UUID]map[uuid.UUID]struct{}{}}
}

func (repo *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	for _, restaurant := range repo.restaurants {
		if restaurant.ID == id {
			clone := *restaurant

			return &clone, nil
		}
	}

	return nil, repository.ErrRestaurantNotFound
}

func (repo *fakeRestaurantRepo) List(_ context.Context, query repository.RestaurantQuery) ([]*entity.Restaurant, error) {
	var matched []*entity.Restaurant
	// Newest first: iterate in reverse insertion order.
	for i := len(repo.restaurants) - 1; i >= 0; i-- {
		restaurant := repo.restaurants[i]
		if query.OwnerID != uuid.Nil && restaurant.UserID != query.OwnerID {
			continue
		}
		if query.Search != "" && !containsFold(restaurant.Name, query.Search) {
			continue
		}
		if query.Category != "" && !containsFold(strings.Join(restaurant.Categories, ","), query.Category) {
			continue
		}
		if query.Feature != "" && !containsFold(strings.Join(restaurant.Features, ","), query.Feature) {
			continue
		}
		if query.Location != "" && !containsFold(restaurant.Location, query.Location) {
			continue
		}
		if (query.MinPrice != 0 || query.MaxPrice != 0) &&
			(restaurant.Price < query.MinPrice || restaurant.Price > query.MaxPrice) {
			continue
		}

		clone := *restaurant
		matched = append(matched, &clone)
	}

	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (repo *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	restaurant.ID = uuid.New()
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = restaurant.CreatedAt
	clone := *restaurant
	repo.restaurants = append(repo.restaurants, &clone)

	return nil
}

func (repo *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	for i, existing := range repo.restaurants {
		if existing.ID == restaurant.ID {
			clone := *restaurant
			clone.CreatedAt = existing.CreatedAt
			clone.UpdatedAt = time.Now()
			repo.restaurants[i] = &clone

			return nil
		}
	}

	return repository.ErrRestaurantNotFound
}

func (repo *fakeRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range repo.restaurants {
		if existing.ID == id {
			repo.restaurants = append(repo.restaurants[:i], repo.restaurants[i+1:]...)

			return nil
		}
	}

	return repository.ErrRestaurantNotFound
}

func (repo *fakeRestaurantRepo) AddFavourite(_ context.Context, userID, restaurantID uuid.UUID) error {
	if repo.favourites[userID] == nil {
		repo.favourites[userID] = map[uuid.UUID]struct{}{}
	}
	repo.favourites[userID][restaurantID] = struct{}{}

	return nil
}

func (repo *fakeRestaurantRepo) FavouriteRestaurantIDs(_ context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	favourites := make(map[uuid.UUID]struct{}, len(repo.favourites[userID]))
	for id := range repo.favourites[userID] {
		favourites[id] = struct{}{}
	}

	return favourites, nil
}

// --- in-memory menu-item repository ---

type fakeMenuRepo struct {
	items      []*entity.MenuItem
	favourites map[uuid.UUID]map[uuid.UUID]struct{}
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{favourites: map[uuid.UUID]map[uuid.UUID]struct{}{}}
}

func (repo *fakeMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	for _, item := range repo.items {
		if item.ID == id {
			clone := *item

			return &clone, nil
		}
	}

	return nil, repository.ErrMenuItemNotFound
}

func (repo *fakeMenuRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var matched []*entity.MenuItem
	for i := len(repo.items) - 1; i >= 0; i-- {
		if repo.items[i].RestaurantID == restaurantID {
			clone := *repo.items[i]
			matched = append(matched, &clone)
		}
	}

	return matched, nil
}

func (repo *fakeMenuRepo) ListAll(_ context.Context) ([]*entity.MenuItem, error) {
	matched := make([]*entity.MenuItem, 0, len(repo.items))
	for i := len(repo.items) - 1; i >= 0; i-- {
		clone := *repo.items[i]
		matched = append(matched, &clone)
	}

	return matched, nil
}

func (repo *fakeMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	repo.items = append(repo.items, &clone)

	return nil
}

func (repo *fakeMenuRepo) Update(_ context.Context, item *entity.MenuItem) error {
	for i, existing := range repo.items {
		if existing.ID == item.ID {
			clone := *item
			clone.CreatedAt = existing.CreatedAt
			clone.UpdatedAt = time.Now()
			repo.items[i] = &clone

			return nil
		}
	}

	return repository.ErrMenuItemNotFound
}

func (repo *fakeMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range repo.items {
		if existing.ID == id {
			repo.items = append(repo.items[:i], repo.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrMenuItemNotFound
}

func (repo *fakeMenuRepo) AddFavourite(_ context.Context, userID, menuItemID uuid.UUID) error {
	if repo.favourites[userID] == nil {
		repo.favourites[userID] = map[uuid.UUID]struct{}{}
	}
	repo.favourites[userID][menuItemID] = struct{}{}

	return nil
}
