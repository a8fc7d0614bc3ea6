package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/errors"
	"savor/internal/usecase"
)

type menuFixture struct {
	menuRepo     *fakeMenuRepo
	userRepo     *fakeUserRepo
	svc          usecase.MenuUsecase
	userID       uuid.UUID
	restaurantID uuid.UUID
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	ctx := context.Background()

	menuRepo := newFakeMenuRepo()
	restaurantRepo := newFakeRestaurantRepo()
	userRepo := newFakeUserRepo()

	user := &entity.User{Email: "diner@example.com", UserName: "diner", PasswordHash: "hashed:pw", Role: entity.RoleUser}
	require.NoError(t, userRepo.Create(ctx, user))

	restaurant := &entity.Restaurant{UserID: user.ID, Name: "Noodle Bar"}
	require.NoError(t, restaurantRepo.Create(ctx, restaurant))

	return &menuFixture{
		menuRepo:     menuRepo,
		userRepo:     userRepo,
		svc:          NewMenuService(menuRepo, restaurantRepo, userRepo, newDiscardLogger()),
		userID:       user.ID,
		restaurantID: restaurant.ID,
	}
}

func TestMenuService_AddAndFetch(t *testing.T) {
	fixture := newMenuFixture(t)
	ctx := context.Background()

	created, err := fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{
		RestaurantID: fixture.restaurantID,
		Name:         "Tonkotsu Ramen",
		Rating:       5,
		Review:       "Rich and creamy",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := fixture.svc.FetchMenuItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tonkotsu Ramen", fetched.Name)
	assert.Equal(t, fixture.restaurantID, fetched.RestaurantID)
}

func TestMenuService_Add_UnknownRestaurant(t *testing.T) {
	fixture := newMenuFixture(t)

	_, err := fixture.svc.AddMenuItem(context.Background(), usecase.MenuItemInput{
		RestaurantID: uuid.New(),
		Name:         "Orphan Dish",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestMenuService_EditPartial(t *testing.T) {
	fixture := newMenuFixture(t)
	ctx := context.Background()

	created, err := fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{
		RestaurantID: fixture.restaurantID,
		Name:         "Gyoza",
		Rating:       3,
		Review:       "Decent",
	})
	require.NoError(t, err)

	newRating := 4.5
	edited, err := fixture.svc.EditMenuItem(ctx, created.ID, usecase.MenuItemUpdate{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 4.5, edited.Rating)
	assert.Equal(t, "Gyoza", edited.Name)
	assert.Equal(t, "Decent", edited.Review)
}

func TestMenuService_EditUnknown(t *testing.T) {
	fixture := newMenuFixture(t)

	name := "whatever"
	_, err := fixture.svc.EditMenuItem(context.Background(), uuid.New(), usecase.MenuItemUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}

func TestMenuService_Delete(t *testing.T) {
	fixture := newMenuFixture(t)
	ctx := context.Background()

	created, err := fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{
		RestaurantID: fixture.restaurantID,
		Name:         "Short-lived",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.svc.DeleteMenuItem(ctx, created.ID))

	err = fixture.svc.DeleteMenuItem(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}

func TestMenuService_ListByRestaurant(t *testing.T) {
	fixture := newMenuFixture(t)
	ctx := context.Background()

	_, err := fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{RestaurantID: fixture.restaurantID, Name: "First"})
	require.NoError(t, err)
	_, err = fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{RestaurantID: fixture.restaurantID, Name: "Second"})
	require.NoError(t, err)

	items, err := fixture.svc.FetchRestaurantMenuItems(ctx, fixture.restaurantID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first.
	assert.Equal(t, "Second", items[0].Name)
	assert.Equal(t, "First", items[1].Name)

	all, err := fixture.svc.FetchMenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMenuService_ListByUnknownRestaurant(t *testing.T) {
	fixture := newMenuFixture(t)

	_, err := fixture.svc.FetchRestaurantMenuItems(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestMenuService_AddFavourite(t *testing.T) {
	fixture := newMenuFixture(t)
	ctx := context.Background()

	created, err := fixture.svc.AddMenuItem(ctx, usecase.MenuItemInput{RestaurantID: fixture.restaurantID, Name: "Karaage"})
	require.NoError(t, err)

	require.NoError(t, fixture.svc.AddFavouriteMenuItem(ctx, fixture.userID, created.ID))

	err = fixture.svc.AddFavouriteMenuItem(ctx, fixture.userID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))

	err = fixture.svc.AddFavouriteMenuItem(ctx, uuid.New(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
