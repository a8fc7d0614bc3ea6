// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"savor/internal/delivery/http/middleware"
	"savor/internal/delivery/http/response"
	"savor/internal/domain/entity"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	UserName        string `json:"userName" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

// SignUp handles the registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input signUpRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:           input.Email,
		UserName:        input.UserName,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, summary, "User registered successfully")
}

// SignIn handles the login request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input signInRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LogIn(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tokens": output.Tokens,
		"user":   toUserResponse(output.User),
	}, "Login successful")
}

// Refresh handles the token rotation request. The refresh guard has already
// validated the bearer token and stashed it on the context.
func (h *AuthHandler) Refresh(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	refreshToken, ok := c.Get(middleware.KeyRefreshToken).(string)
	if !ok || refreshToken == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Refresh token missing from request")
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), userID, refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tokens": output.Tokens,
		"user":   toUserResponse(output.User),
	}, "Token refreshed successfully")
}

// UpdatePassword handles the password change request for the authenticated user.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input updatePasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), userID, input.OldPassword, input.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// Logout handles the logout request for the authenticated user.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.LogOut(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// userIDFromContext reads the user ID stored by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
