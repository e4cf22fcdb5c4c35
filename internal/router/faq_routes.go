package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/faq-portal/internal/handler"
	"github.com/iliyamo/faq-portal/internal/middleware"
	"github.com/iliyamo/faq-portal/internal/model"
)

// RegisterFaq registers the FAQ collection routes. Browsing is public
// (optionally wrapped in the Redis response cache); create, update,
// delete and analytics require a valid token with the Admin role.
// The /faqs/analytics route is registered as a static path, so it wins
// over the :id parameter route in Echo's router.
func RegisterFaq(e *echo.Echo, f *handler.FaqHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	auth := middleware.JWTAuth(jwtSecret)
	admin := middleware.RequireRole(model.RoleAdmin)

	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	// Public browse and search, cached.
	e.GET("/faqs", f.List, cache)
	e.GET("/faqs/:id", f.GetByID, cache)

	// Admin-only management and analytics.
	e.GET("/faqs/analytics", f.Analytics, auth, admin)
	e.POST("/faqs", f.Create, auth, admin)
	e.PUT("/faqs/:id", f.Update, auth, admin)
	e.DELETE("/faqs/:id", f.Delete, auth, admin)
}
