package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"asiadrive/internal/auth"
	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/flash"
	"asiadrive/internal/middleware"
	"asiadrive/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a registration form submission.
type RegisterRequest struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Phone           string `form:"phone"`
	Password        string `form:"password" validate:"required"`
	PasswordConfirm string `form:"password_confirm" validate:"required"`
	Next            string `form:"next"`
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// RegisterForm godoc
// @Summary Registration page data
// @Tags auth
// @Produce json
// @Param next query string false "Redirect target after registering"
// @Success 200 {object} map[string]interface{}
// @Router /auth/register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"next":   safeNextPath(c.QueryParam("next")),
		"notice": flash.Pop(c),
	})
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param name formData string true "Display name"
// @Param email formData string true "Email"
// @Param phone formData string false "Phone"
// @Param password formData string true "Password"
// @Param password_confirm formData string true "Password confirmation"
// @Param next formData string false "Redirect target"
// @Success 303
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	next := safeNextPath(firstNonEmpty(req.Next, c.QueryParam("next")))
	retry := "/auth/register?next=" + url.QueryEscape(next)

	if err := c.Validate(&req); err != nil {
		flash.Set(c, flash.LevelError, "Please fill in all required fields.")
		return c.Redirect(http.StatusSeeOther, retry)
	}

	_, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		if notice, ok := domainNotice(err); ok {
			flash.Set(c, flash.LevelError, notice)
			return c.Redirect(http.StatusSeeOther, retry)
		}
		return err
	}

	setSessionCookie(c, token)
	flash.Set(c, flash.LevelSuccess, "Registration successful!")
	return c.Redirect(http.StatusSeeOther, next)
}

// LoginForm godoc
// @Summary Login page data
// @Tags auth
// @Produce json
// @Param next query string false "Redirect target after signing in"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"next":   safeNextPath(c.QueryParam("next")),
		"notice": flash.Pop(c),
	})
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param next formData string false "Redirect target"
// @Success 303
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	next := safeNextPath(firstNonEmpty(req.Next, c.QueryParam("next")))
	retry := "/auth/login?next=" + url.QueryEscape(next)

	if err := c.Validate(&req); err != nil {
		flash.Set(c, flash.LevelError, "Please fill in all required fields.")
		return c.Redirect(http.StatusSeeOther, retry)
	}

	_, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if notice, ok := domainNotice(err); ok {
			flash.Set(c, flash.LevelError, notice)
			return c.Redirect(http.StatusSeeOther, retry)
		}
		return err
	}

	setSessionCookie(c, token)
	flash.Set(c, flash.LevelSuccess, "Welcome back!")
	return c.Redirect(http.StatusSeeOther, next)
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Success 302
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := c.Get(middleware.SessionContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*auth.SessionClaims); ok {
			// best effort: an already revoked session logs out just the same
			_ = h.authService.Logout(c.Request().Context(), claims.ID)
		}
	}

	clearSessionCookie(c)
	flash.Set(c, flash.LevelSuccess, "You have been signed out.")
	return c.Redirect(http.StatusFound, "/")
}

// domainNotice maps a domain error to its user-facing notice text.
func domainNotice(err error) (string, bool) {
	switch {
	case apperrors.IsValidation(err):
		return err.Error(), true
	case errors.Is(err, apperrors.ErrEmailTaken):
		return "This email is already registered.", true
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid email or password.", true
	default:
		return "", false
	}
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
