package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles permits the request when the caller's role set intersects the
// given names.
func RequireRoles(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !user.HasAnyRole(names...) {
				return echo.NewHTTPError(http.StatusForbidden, "permission denied")
			}
			return next(c)
		}
	}
}
