package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"asiadrive/internal/auth"
	"asiadrive/internal/handler"
	appmw "asiadrive/internal/middleware"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.SessionManager,
	store auth.SessionStoreInterface,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	leadHandler *handler.LeadHandler,
	trackingHandler *handler.TrackingHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Optional identity: every route sees the signed-in user when the
	// session cookie is valid, anonymous otherwise.
	e.Use(appmw.SessionParser(sessions))
	e.Use(appmw.LoadUser(users, store))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", catalogHandler.List)
	e.GET("/tracking", trackingHandler.PublicFeed)

	e.GET("/auth/register", authHandler.RegisterForm)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/login", authHandler.LoginForm)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)

	// Signed-in customers
	e.POST("/lead", leadHandler.CreateLead, appmw.RequireAuth)

	// Staff routes
	staff := appmw.RequireRoles(model.RoleAdmin, model.RoleModerator)
	e.GET("/add", catalogHandler.NewCarForm, staff)
	e.POST("/add", catalogHandler.AddCar, staff)
	e.GET("/tracking/manage", trackingHandler.ManagePage, staff)
	e.POST("/tracking/manage", trackingHandler.RecordEvent, staff)

	// Admin routes
	e.GET("/leads", leadHandler.ListLeads, appmw.RequireRoles(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
