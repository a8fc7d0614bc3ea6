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

type restaurantFixture struct {
	restaurantRepo *fakeRestaurantRepo
	userRepo       *fakeUserRepo
	svc            usecase.RestaurantUsecase
	ownerID        uuid.UUID
}

func newRestaurantFixture(t *testing.T) *restaurantFixture {
	t.Helper()

	restaurantRepo := newFakeRestaurantRepo()
	userRepo := newFakeUserRepo()

	owner := &entity.User{Email: "owner@example.com", UserName: "owner", PasswordHash: "hashed:pw", Role: entity.RoleUser}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	return &restaurantFixture{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		svc:            NewRestaurantService(restaurantRepo, userRepo, newDiscardLogger()),
		ownerID:        owner.ID,
	}
}

func (f *restaurantFixture) add(t *testing.T, input usecase.RestaurantInput) *entity.Restaurant {
	t.Helper()

	restaurant, err := f.svc.AddRestaurant(context.Background(), f.ownerID, input)
	require.NoError(t, err)

	return restaurant
}

func TestRestaurantService_AddAndFetch(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	created := fixture.add(t, usecase.RestaurantInput{
		Name:       "Noodle Bar",
		Location:   "Downtown",
		Price:      12,
		Rating:     4.5,
		Review:     "Great broth",
		Features:   []string{"outdoor seating"},
		Categories: []string{"ramen", "japanese"},
	})
	require.NotEqual(t, uuid.Nil, created.ID)

	detail, err := fixture.svc.FetchRestaurant(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Noodle Bar", detail.Restaurant.Name)
	assert.Equal(t, 0, detail.MenuItemCount)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "owner", detail.Owner.UserName)
	assert.Equal(t, "owner@example.com", detail.Owner.Email)
}

func TestRestaurantService_FetchUnknown(t *testing.T) {
	fixture := newRestaurantFixture(t)

	_, err := fixture.svc.FetchRestaurant(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_EditPartial(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	created := fixture.add(t, usecase.RestaurantInput{Name: "Old Name", Location: "Uptown", Price: 20, Rating: 3})

	newName := "New Name"
	newRating := 4.0
	edited, err := fixture.svc.EditRestaurant(ctx, created.ID, usecase.RestaurantUpdate{
		Name:   &newName,
		Rating: &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", edited.Name)
	assert.Equal(t, 4.0, edited.Rating)
	// Untouched fields survive the partial edit.
	assert.Equal(t, "Uptown", edited.Location)
	assert.Equal(t, 20, edited.Price)
}

func TestRestaurantService_EditUnknown(t *testing.T) {
	fixture := newRestaurantFixture(t)

	name := "whatever"
	_, err := fixture.svc.EditRestaurant(context.Background(), uuid.New(), usecase.RestaurantUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_Delete(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	created := fixture.add(t, usecase.RestaurantInput{Name: "Short-lived"})

	require.NoError(t, fixture.svc.DeleteRestaurant(ctx, created.ID))

	err := fixture.svc.DeleteRestaurant(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_FetchMyRestaurants_PriceBuckets(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	cheap := fixture.add(t, usecase.RestaurantInput{Name: "Street Food", Price: 8})
	mid := fixture.add(t, usecase.RestaurantInput{Name: "Bistro", Price: 25})
	fancy := fixture.add(t, usecase.RestaurantInput{Name: "Fine Dining", Price: 80})

	tests := []struct {
		bucket string
		wantID uuid.UUID
	}{
		{bucket: "$", wantID: cheap.ID},
		{bucket: "$$", wantID: mid.ID},
		{bucket: "$$$", wantID: fancy.ID},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			listed, err := fixture.svc.FetchMyRestaurants(ctx, fixture.ownerID, usecase.RestaurantFilter{PriceBucket: tt.bucket})
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, tt.wantID, listed[0].ID)
		})
	}
}

func TestRestaurantService_FetchMyRestaurants_SearchAndFilters(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	fixture.add(t, usecase.RestaurantInput{Name: "Noodle Bar", Location: "Downtown", Categories: []string{"ramen"}})
	fixture.add(t, usecase.RestaurantInput{Name: "Pizza Place", Location: "Uptown", Categories: []string{"italian"}, Features: []string{"delivery"}})

	byName, err := fixture.svc.FetchMyRestaurants(ctx, fixture.ownerID, usecase.RestaurantFilter{Search: "noodle"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Noodle Bar", byName[0].Name)

	byCategory, err := fixture.svc.FetchMyRestaurants(ctx, fixture.ownerID, usecase.RestaurantFilter{Category: "italian"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Pizza Place", byCategory[0].Name)

	byFeature, err := fixture.svc.FetchMyRestaurants(ctx, fixture.ownerID, usecase.RestaurantFilter{Feature: "delivery"})
	require.NoError(t, err)
	require.Len(t, byFeature, 1)

	byLocation, err := fixture.svc.FetchMyRestaurants(ctx, fixture.ownerID, usecase.RestaurantFilter{Location: "downtown"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Noodle Bar", byLocation[0].Name)
}

func TestRestaurantService_FavouritesSortFirst(t *testing.T) {
	fixture := newRestaurantFixture(t)
	ctx := context.Background()

	first := fixture.add(t, usecase.RestaurantInput{Name: "First"})
	second := fixture.add(t, usecase.RestaurantInput{Name: "Second"})
	third := fixture.add(t, usecase.RestaurantInput{Name: "Third"})

	require.NoError(t, fixture.svc.AddFavouriteRestaurant(ctx, fixture.ownerID, first.ID))

	listed, err := fixture.svc.FetchRestaurants(ctx, fixture.ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// The favourited restaurant jumps the newest-first order.
	assert.Equal(t, first.ID, listed[0].ID)
	assert.True(t, listed[0].Favourite)

	// The rest keep their newest-first order.
	assert.Equal(t, third.ID, listed[1].ID)
	assert.Equal(t, second.ID, listed[2].ID)
	assert.False(t, listed[1].Favourite)
	assert.False(t, listed[2].Favourite)
}

func TestRestaurantService_AddFavourite_UnknownRestaurant(t *testing.T) {
	fixture := newRestaurantFixture(t)

	err := fixture.svc.AddFavouriteRestaurant(context.Background(), fixture.ownerID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_AddFavourite_UnknownUser(t *testing.T) {
	fixture := newRestaurantFixture(t)
	created := fixture.add(t, usecase.RestaurantInput{Name: "Somewhere"})

	err := fixture.svc.AddFavouriteRestaurant(context.Background(), uuid.New(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
