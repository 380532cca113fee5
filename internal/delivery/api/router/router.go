// Package router contains route registration for the API server.
package router

import (
	"meetup/internal/delivery/api/middleware"
	"meetup/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchHandler      *handler.MatchHandler
	SessionHandler    *handler.SessionHandler
	LinkHandler       *handler.LinkHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	matchHandler      *handler.MatchHandler
	sessionHandler    *handler.SessionHandler
	linkHandler       *handler.LinkHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchHandler:      params.MatchHandler,
		sessionHandler:    params.SessionHandler,
		linkHandler:       params.LinkHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.sessionHandler.CreateSession)
	}

	// API v1 routes, gated only when a password is configured
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate)

	apiV1.GET("/cuisines", r.matchHandler.ListCuisines)

	matchesGroup := apiV1.Group("/matches")
	{
		matchesGroup.POST("", r.matchHandler.FindMatches)
		matchesGroup.POST("/geojson", r.matchHandler.FindMatchesGeoJSON)
	}

	linksGroup := apiV1.Group("/links")
	{
		linksGroup.GET("/qr", r.linkHandler.GenerateLinkQR)
	}
}
