package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware function that enforces that the
// authenticated user has one of the specified roles. The comparison is
// exact and case-sensitive against the value stored in the token's
// "role" claim. It assumes JWTAuth already ran and stored the role in
// the context; a request that never passed authentication never gets
// here. On mismatch the request is aborted with 403 without touching
// the credential store again.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	// Build a set of allowed roles for constant-time lookups.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Retrieve the role from context. It should have been stored
			// by JWTAuth as a string; if not present or of wrong type,
			// treat as missing.
			v := c.Get(CtxRole)
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":   "FORBIDDEN",
					"message": "insufficient role",
				})
			}
			return next(c)
		}
	}
}
