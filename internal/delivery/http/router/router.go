// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"moviedb/internal/delivery/http/middleware"
	"moviedb/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	MovieHandler        *handler.MovieHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	movieHandler        *handler.MovieHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		movieHandler:        params.MovieHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes: registration, login, listing, and the token-gated route.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/protected", r.userHandler.Protected, r.authMiddleware.Authenticate)
	}

	// Movie catalog CRUD.
	movieGroup := e.Group("/movies")
	{
		movieGroup.POST("", r.movieHandler.Create)
		movieGroup.PUT("/:id", r.movieHandler.Update)
		movieGroup.DELETE("/:id", r.movieHandler.Delete)
		movieGroup.GET("", r.movieHandler.List)
	}
}
