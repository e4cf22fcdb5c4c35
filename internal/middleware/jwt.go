package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/faq-portal/internal/utils" // token verification helpers
)

// Context keys under which JWTAuth stores the resolved identity.
// Downstream handlers read them via c.Get(); user_id is a uint64 and
// role a string, already validated here.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the resolved identity into the request context. The provided
// secret must match the one used when issuing tokens. Expired and
// malformed tokens are deliberately indistinguishable from the outside:
// every failure short-circuits with the same 401 envelope so a caller
// learns nothing about which check tripped.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthenticated(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				// utils distinguishes expired from invalid; the wire does not.
				return unauthenticated(c)
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error":   "UNAUTHENTICATED",
		"message": "missing, invalid or expired token",
	})
}
