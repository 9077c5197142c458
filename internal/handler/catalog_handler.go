package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/flash"
	"asiadrive/internal/middleware"
	"asiadrive/internal/service"
)

// CatalogHandler serves the vehicle catalog.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// AddCarRequest represents a new listing form submission.
type AddCarRequest struct {
	Brand       string `form:"brand"`
	Model       string `form:"model"`
	Year        string `form:"year"`
	Price       string `form:"price"`
	Mileage     string `form:"mileage"`
	FuelType    string `form:"fuel_type"`
	Country     string `form:"country"`
	ImageURL    string `form:"image_url"`
	Description string `form:"description"`
}

// List godoc
// @Summary Vehicle catalog
// @Description Lists vehicles, optionally filtered by country facet and brand/model search.
// @Tags catalog
// @Produce json
// @Param country query string false "Country facet (china or korea)"
// @Param q query string false "Brand or model search"
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *CatalogHandler) List(c echo.Context) error {
	page, err := h.catalogService.ListCars(c.Request().Context(), c.QueryParam("country"), c.QueryParam("q"))
	if err != nil {
		return jsonError(c, err)
	}

	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, echo.Map{
		"page":   page,
		"user":   user,
		"notice": flash.Pop(c),
	})
}

// NewCarForm godoc
// @Summary New listing page data
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /add [get]
func (h *CatalogHandler) NewCarForm(c echo.Context) error {
	countries, err := h.catalogService.Countries(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"countries": countries,
		"notice":    flash.Pop(c),
	})
}

// AddCar godoc
// @Summary Add a vehicle listing
// @Tags catalog
// @Accept x-www-form-urlencoded
// @Param brand formData string true "Brand"
// @Param model formData string true "Model"
// @Param year formData string true "Year"
// @Param price formData string true "Price"
// @Param mileage formData string false "Mileage"
// @Param fuel_type formData string false "Fuel type"
// @Param country formData string true "Country of origin"
// @Param image_url formData string false "Image URL"
// @Param description formData string false "Description"
// @Success 303
// @Router /add [post]
func (h *CatalogHandler) AddCar(c echo.Context) error {
	var req AddCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	_, err := h.catalogService.AddCar(c.Request().Context(), service.AddCarInput{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Mileage:     req.Mileage,
		FuelType:    req.FuelType,
		Country:     req.Country,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			flash.Set(c, flash.LevelError, err.Error())
			return c.Redirect(http.StatusSeeOther, "/add")
		}
		return err
	}

	flash.Set(c, flash.LevelSuccess, "Vehicle added to the catalog.")
	return c.Redirect(http.StatusSeeOther, "/")
}
