package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/faq-portal/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/faq-portal/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/iliyamo/faq-portal/internal/model"      // role constants for admin-gated routes
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication, profile and bookmark routes
// and applies the necessary middleware. Registration and login live
// under /auth without a token; everything else under /auth requires one.
// Authentication always runs before any role check, so a request with a
// missing or invalid token never reaches a role comparison.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, b *handler.BookmarkHandler, jwtSecret string) {
	g := e.Group("/auth")
	// Open endpoints: these mint tokens rather than requiring them.
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	// Protected endpoints share the same group with the JWT guard applied
	// per route, keeping the open and protected paths side by side.
	auth := middleware.JWTAuth(jwtSecret)
	g.GET("/me", a.Me, auth)
	g.GET("/bookmarks", b.List, auth)
	g.POST("/bookmarks", b.Add, auth)
	g.DELETE("/bookmarks/:faqId", b.Remove, auth)
	// User analytics is the only admin-gated route in this group.
	g.GET("/analytics", a.UserAnalytics, auth, middleware.RequireRole(model.RoleAdmin))
}
