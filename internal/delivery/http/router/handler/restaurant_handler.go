package handler

import (
	"log/slog"
	"net/http"
	"time"

	"savor/internal/delivery/http/response"
	"savor/internal/domain/entity"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant review handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

type restaurantRequest struct {
	Name       string   `json:"name" validate:"required"`
	Location   string   `json:"location"`
	Price      int      `json:"price" validate:"gte=0"`
	Rating     float64  `json:"rating" validate:"gte=0,lte=5"`
	Review     string   `json:"review"`
	Features   []string `json:"features"`
	Categories []string `json:"categories"`
}

type restaurantUpdateRequest struct {
	Name       *string  `json:"name"`
	Location   *string  `json:"location"`
	Price      *int     `json:"price"`
	Rating     *float64 `json:"rating"`
	Review     *string  `json:"review"`
	Features   []string `json:"features"`
	Categories []string `json:"categories"`
}

type restaurantResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	Name       string          `json:"name"`
	Location   string          `json:"location"`
	Price      int             `json:"price"`
	Rating     float64         `json:"rating"`
	Review     string          `json:"review"`
	Features   []string        `json:"features"`
	Categories []string        `json:"categories"`
	Favourite  bool            `json:"favourite"`
	MenuItems  []*menuResponse `json:"menuItems,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type restaurantDetailResponse struct {
	restaurantResponse
	Owner         *ownerResponse `json:"owner,omitempty"`
	MenuItemCount int            `json:"menuItemCount"`
}

type ownerResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
}

func toRestaurantResponse(restaurant *entity.Restaurant) *restaurantResponse {
	menuItems := make([]*menuResponse, 0, len(restaurant.MenuItems))
	for _, item := range restaurant.MenuItems {
		menuItems = append(menuItems, toMenuResponse(item))
	}

	return &restaurantResponse{
		ID:         restaurant.ID,
		UserID:     restaurant.UserID,
		Name:       restaurant.Name,
		Location:   restaurant.Location,
		Price:      restaurant.Price,
		Rating:     restaurant.Rating,
		Review:     restaurant.Review,
		Features:   restaurant.Features,
		Categories: restaurant.Categories,
		Favourite:  restaurant.Favourite,
		MenuItems:  menuItems,
		CreatedAt:  restaurant.CreatedAt,
		UpdatedAt:  restaurant.UpdatedAt,
	}
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []*restaurantResponse {
	responses := make([]*restaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, toRestaurantResponse(restaurant))
	}

	return responses
}

// Add handles creating a restaurant review.
func (h *RestaurantHandler) Add(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input restaurantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.AddRestaurant(c.Request().Context(), userID, usecase.RestaurantInput{
		Name:       input.Name,
		Location:   input.Location,
		Price:      input.Price,
		Rating:     input.Rating,
		Review:     input.Review,
		Features:   input.Features,
		Categories: input.Categories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRestaurantResponse(restaurant), "Restaurant added successfully")
}

// Edit handles a partial update of a restaurant review.
func (h *RestaurantHandler) Edit(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input restaurantUpdateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	restaurant, err := h.uc.EditRestaurant(c.Request().Context(), id, usecase.RestaurantUpdate{
		Name:       input.Name,
		Location:   input.Location,
		Price:      input.Price,
		Rating:     input.Rating,
		Review:     input.Review,
		Features:   input.Features,
		Categories: input.Categories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantResponse(restaurant), "Restaurant updated successfully")
}

// Fetch handles retrieving a single restaurant with its owner summary.
func (h *RestaurantHandler) Fetch(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.FetchRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	out := &restaurantDetailResponse{
		restaurantResponse: *toRestaurantResponse(detail.Restaurant),
		MenuItemCount:      detail.MenuItemCount,
	}
	if detail.Owner != nil {
		out.Owner = &ownerResponse{
			ID:       detail.Owner.ID,
			UserName: detail.Owner.UserName,
			Email:    detail.Owner.Email,
		}
	}

	return response.Success(c, http.StatusOK, out, "Restaurant retrieved successfully")
}

// Delete handles removing a restaurant review.
func (h *RestaurantHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant deleted successfully")
}

// FetchMine handles listing the caller's own restaurants with filters.
func (h *RestaurantHandler) FetchMine(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	filter := usecase.RestaurantFilter{
		Search:      c.QueryParam("search"),
		Category:    c.QueryParam("category"),
		Feature:     c.QueryParam("feature"),
		Location:    c.QueryParam("location"),
		PriceBucket: c.QueryParam("price"),
	}

	restaurants, err := h.uc.FetchMyRestaurants(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantResponses(restaurants), "Restaurants retrieved successfully")
}

// FetchAll handles listing every restaurant.
func (h *RestaurantHandler) FetchAll(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	restaurants, err := h.uc.FetchRestaurants(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRestaurantResponses(restaurants), "Restaurants retrieved successfully")
}

// AddFavourite handles favouriting a restaurant for the caller.
func (h *RestaurantHandler) AddFavourite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.AddFavouriteRestaurant(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant favourited successfully")
}

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name+" parameter")
	}

	return id, nil
}
