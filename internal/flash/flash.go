// Package flash implements one-shot user notices carried in a cookie: set on
// a redirecting response, read and cleared when the next page is built.
package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const cookieName = "asiadrive_flash"

// Notice levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notice is a user-facing message with a severity level.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Set stores a notice for the next request.
func Set(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(c echo.Context) *Notice {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(raw, "|")
	if !found {
		return nil
	}
	return &Notice{Level: level, Message: message}
}
