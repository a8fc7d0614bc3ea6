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

// MenuHandler holds dependencies for menu-item review handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

type menuItemRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	Review       string    `json:"review"`
}

type menuItemUpdateRequest struct {
	Name   *string  `json:"name"`
	Rating *float64 `json:"rating"`
	Review *string  `json:"review"`
}

type menuResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	Review       string    `json:"review"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toMenuResponse(item *entity.MenuItem) *menuResponse {
	return &menuResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Rating:       item.Rating,
		Review:       item.Review,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toMenuResponses(items []*entity.MenuItem) []*menuResponse {
	responses := make([]*menuResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toMenuResponse(item))
	}

	return responses
}

// Add handles creating a menu-item review.
func (h *MenuHandler) Add(c echo.Context) error {
	var input menuItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddMenuItem(c.Request().Context(), usecase.MenuItemInput{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Rating:       input.Rating,
		Review:       input.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMenuResponse(item), "Menu item added successfully")
}

// Edit handles a partial update of a menu-item review.
func (h *MenuHandler) Edit(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input menuItemUpdateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	item, err := h.uc.EditMenuItem(c.Request().Context(), id, usecase.MenuItemUpdate{
		Name:   input.Name,
		Rating: input.Rating,
		Review: input.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuResponse(item), "Menu item updated successfully")
}

// Fetch handles retrieving a single menu item.
func (h *MenuHandler) Fetch(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.FetchMenuItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuResponse(item), "Menu item retrieved successfully")
}

// Delete handles removing a menu-item review.
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}

// FetchByRestaurant handles listing the menu items of one restaurant.
func (h *MenuHandler) FetchByRestaurant(c echo.Context) error {
	restaurantID, err := uuidParam(c, "restaurantId")
	if err != nil {
		return err
	}

	items, err := h.uc.FetchRestaurantMenuItems(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuResponses(items), "Menu items retrieved successfully")
}

// FetchAll handles listing every menu item.
func (h *MenuHandler) FetchAll(c echo.Context) error {
	items, err := h.uc.FetchMenuItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuResponses(items), "Menu items retrieved successfully")
}

// AddFavourite handles favouriting a menu item for the caller.
func (h *MenuHandler) AddFavourite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.AddFavouriteMenuItem(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item favourited successfully")
}
