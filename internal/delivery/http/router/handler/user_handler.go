package handler

import (
	"log/slog"
	"net/http"

	"savor/internal/delivery/http/response"
	"savor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	UserName *string `json:"userName" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type getUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfile handles a partial edit of the caller's own profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.ProfileUpdate{
		UserName: input.UserName,
		Email:    input.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// GetUserByEmail handles looking up a user by email.
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	var input getUserByEmailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.FetchUserByEmail(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}
