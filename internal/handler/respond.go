package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "asiadrive/internal/errors"
)

// jsonError converts a domain error into a standardized JSON error response.
func jsonError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// safeNextPath restricts a post-login redirect target to same-site relative
// paths; anything else falls back to the catalog page.
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
