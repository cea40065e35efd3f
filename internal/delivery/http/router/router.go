// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mugclub/internal/delivery/http/middleware"
	"mugclub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	DrinkHandler   *handler.DrinkHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	drinkHandler   *handler.DrinkHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		drinkHandler:   params.DrinkHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Index)
	e.GET("/wakeup", handler.Wakeup)

	// Phone login routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("", r.authHandler.BeginAuth)
		authGroup.POST("/verify", r.authHandler.CompleteAuth)
		authGroup.GET("/test", r.authHandler.TestAuth, r.authMiddleware.Authenticate)
	}

	// Reference-data searches are public; nothing personal leaks through them
	searchGroup := e.Group("/search")
	{
		searchGroup.GET("/beer", r.searchHandler.SearchBeers)
		searchGroup.GET("/brewery", r.searchHandler.SearchBreweries)
	}

	// Drink log routes require a live session
	drinkGroup := e.Group("/drink")
	drinkGroup.Use(r.authMiddleware.Authenticate)
	{
		drinkGroup.GET("", r.drinkHandler.ListDrinks)
		drinkGroup.POST("", r.drinkHandler.RecordDrink)
		drinkGroup.DELETE("/:id", r.drinkHandler.DeleteDrink)
	}
}
