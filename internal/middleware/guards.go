package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"asiadrive/internal/flash"
)

// RequireAuth rejects anonymous requests with a redirect to the login page,
// preserving the originally requested destination in the next parameter.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			flash.Set(c, flash.LevelError, "Sign in to continue.")
			return c.Redirect(http.StatusFound, "/auth/login?next="+url.QueryEscape(c.Request().RequestURI))
		}
		return next(c)
	}
}

// RequireRoles implies RequireAuth and additionally rejects users whose role
// is not one of the allowed roles. There is no wildcard and no inheritance:
// a role either appears in the list or the request is turned away.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			if !CurrentUser(c).HasRole(roles...) {
				flash.Set(c, flash.LevelError, "You do not have permission for this action.")
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		})
	}
}
