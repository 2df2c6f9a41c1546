// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router/handler"
	"bookstore/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Book routes that require authentication
	appGroup := e.Group("/app")
	appGroup.Use(r.authMiddleware.Authenticate)
	{
		appGroup.POST("/books", r.bookHandler.Add)
		appGroup.GET("/books", r.bookHandler.List)
		appGroup.GET("/books/:id", r.bookHandler.Get)
		appGroup.PUT("/books/:id", r.bookHandler.Update)
		appGroup.DELETE("/books/:id", r.bookHandler.Remove)
	}
}
