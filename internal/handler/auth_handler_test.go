package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asiadrive/internal/auth"
	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/middleware"
	"asiadrive/internal/model"
	"asiadrive/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (*model.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newFormContext(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets the session cookie and honors next", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "ivan@example.com", "password123").
			Return(&model.User{ID: 1, Email: "ivan@example.com"}, "signed-token", nil)

		c, rec := newFormContext(t, "/auth/login", url.Values{
			"email":    {"ivan@example.com"},
			"password": {"password123"},
			"next":     {"/tracking/manage"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Login(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/tracking/manage", rec.Header().Get(echo.HeaderLocation))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		mockAuth.AssertExpectations(t)
	})

	t.Run("invalid credentials redirect back to the form", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "ivan@example.com", "wrong").
			Return(nil, "", apperrors.ErrInvalidCredentials)

		c, rec := newFormContext(t, "/auth/login", url.Values{
			"email":    {"ivan@example.com"},
			"password": {"wrong"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Login(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login?next=%2F", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("offsite next falls back to the catalog", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "ivan@example.com", "password123").
			Return(&model.User{ID: 1}, "signed-token", nil)

		c, rec := newFormContext(t, "/auth/login", url.Values{
			"email":    {"ivan@example.com"},
			"password": {"password123"},
			"next":     {"https://evil.example.com/"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Login(c))
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("already signed in redirects home without calling the service", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		c, rec := newFormContext(t, "/auth/login", url.Values{})
		c.Set(middleware.ContextUserKey, &model.User{ID: 1})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Login(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		mockAuth.AssertNotCalled(t, "Login")
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success signs the user in immediately", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
			Return(&model.User{ID: 5, Role: model.RoleCustomer}, "signed-token", nil)

		c, rec := newFormContext(t, "/auth/register", url.Values{
			"name":             {"Ivan"},
			"email":            {"ivan@example.com"},
			"password":         {"password123"},
			"password_confirm": {"password123"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Register(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		require.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		mockAuth := new(MockAuthService)

		c, rec := newFormContext(t, "/auth/register", url.Values{
			"name": {"Ivan"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Register(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/register?next=%2F", rec.Header().Get(echo.HeaderLocation))
		mockAuth.AssertNotCalled(t, "Register")
	})

	t.Run("duplicate email redirects back to the form", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
			Return(nil, "", apperrors.ErrEmailTaken)

		c, rec := newFormContext(t, "/auth/register", url.Values{
			"name":             {"Ivan"},
			"email":            {"ivan@example.com"},
			"password":         {"password123"},
			"password_confirm": {"password123"},
		})

		handler := NewAuthHandler(mockAuth)
		require.NoError(t, handler.Register(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/register?next=%2F", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, sessionCookie(t, rec))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	mockAuth := new(MockAuthService)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewAuthHandler(mockAuth)
	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestSafeNextPath(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"empty", "", "/"},
		{"relative path", "/tracking/manage", "/tracking/manage"},
		{"path with query", "/?country=korea", "/?country=korea"},
		{"absolute url", "https://evil.example.com/", "/"},
		{"protocol relative", "//evil.example.com", "/"},
		{"no leading slash", "tracking", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNextPath(tt.next))
		})
	}
}
