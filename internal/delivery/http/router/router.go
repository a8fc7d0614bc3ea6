// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"savor/internal/delivery/http/middleware"
	"savor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	MenuHandler       *handler.MenuHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	menuHandler       *handler.MenuHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		menuHandler:       params.MenuHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		// The refresh endpoint authenticates with the refresh token itself.
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.AuthenticateRefresh)
		authGroup.POST("/updatePassword", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User profile routes require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PATCH("/updateProfile", r.userHandler.UpdateProfile)
		userGroup.POST("/getUserByEmail", r.userHandler.GetUserByEmail)
	}

	// Restaurant routes require authentication
	restaurantGroup := e.Group("/restaurants")
	restaurantGroup.Use(r.authMiddleware.Authenticate)
	{
		restaurantGroup.POST("", r.restaurantHandler.Add)
		restaurantGroup.GET("", r.restaurantHandler.FetchAll)
		restaurantGroup.GET("/mine", r.restaurantHandler.FetchMine)
		restaurantGroup.GET("/:id", r.restaurantHandler.Fetch)
		restaurantGroup.PATCH("/:id", r.restaurantHandler.Edit)
		restaurantGroup.DELETE("/:id", r.restaurantHandler.Delete)
		restaurantGroup.POST("/:id/favourite", r.restaurantHandler.AddFavourite)
	}

	// Menu-item routes require authentication
	menuGroup := e.Group("/menu-items")
	menuGroup.Use(r.authMiddleware.Authenticate)
	{
		menuGroup.POST("", r.menuHandler.Add)
		menuGroup.GET("", r.menuHandler.FetchAll)
		menuGroup.GET("/restaurant/:restaurantId", r.menuHandler.FetchByRestaurant)
		menuGroup.GET("/:id", r.menuHandler.Fetch)
		menuGroup.PATCH("/:id", r.menuHandler.Edit)
		menuGroup.DELETE("/:id", r.menuHandler.Delete)
		menuGroup.POST("/:id/favourite", r.menuHandler.AddFavourite)
	}
}
