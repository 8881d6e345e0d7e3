// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"igpress/internal/delivery/http/middleware"
	"igpress/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	AccountHandler   *handler.AccountHandler
	SummarizeHandler *handler.SummarizeHandler
	PublishHandler   *handler.PublishHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	accountHandler   *handler.AccountHandler
	summarizeHandler *handler.SummarizeHandler
	publishHandler   *handler.PublishHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		profileHandler:   params.ProfileHandler,
		accountHandler:   params.AccountHandler,
		summarizeHandler: params.SummarizeHandler,
		publishHandler:   params.PublishHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/facebook/login", r.authHandler.FacebookLogin)
		authGroup.GET("/facebook/callback", r.authHandler.FacebookCallback)
	}

	// API routes that require an authenticated session
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/user/profile", r.profileHandler.GetProfile)
		apiGroup.GET("/facebook/pages", r.accountHandler.ListPages)
		apiGroup.GET("/instagram/accounts", r.accountHandler.ListAccounts)
		apiGroup.POST("/summarize", r.summarizeHandler.Summarize)
		apiGroup.POST("/publish", r.publishHandler.Publish)
		apiGroup.GET("/publications", r.publishHandler.ListPublications)
	}
}
