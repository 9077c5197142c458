package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"asiadrive/internal/auth"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

const (
	// SessionContextKey holds the parsed (not yet resolved) session token.
	SessionContextKey = "session_token"
	// ContextUserKey holds the resolved current user for the request.
	ContextUserKey = "current_user"
)

// SessionParser returns middleware that parses the session cookie when one
// is present. Requests without a valid token simply continue anonymously;
// the guards below decide whether that is acceptable.
func SessionParser(sessions *auth.SessionManager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  SessionContextKey,
		TokenLookup: "cookie:" + auth.SessionCookieName,
		KeyFunc:     sessions.Keyfunc,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// LoadUser resolves the parsed session token to a user record exactly once
// per request and memoizes the result in the request context. A token whose
// session record was revoked, or whose user row no longer exists, resolves
// to no user.
func LoadUser(users repository.UserRepository, store auth.SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(SessionContextKey).(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.SessionClaims)
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			userID, active, err := store.Lookup(ctx, claims.ID)
			if err != nil || !active || userID != claims.UserID {
				return next(c)
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				// stale user id: treat the request as signed out
				return next(c)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
