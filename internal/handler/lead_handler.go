package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/flash"
	"asiadrive/internal/middleware"
	"asiadrive/internal/service"
)

// LeadHandler handles customer purchase requests.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLeadRequest represents a purchase request form submission.
type CreateLeadRequest struct {
	Name           string `form:"name"`
	Phone          string `form:"phone"`
	Email          string `form:"email"`
	CarID          string `form:"car_id"`
	PreferredBrand string `form:"preferred_brand"`
	PreferredModel string `form:"preferred_model"`
	Country        string `form:"preferred_country"`
	Budget         string `form:"budget"`
	Comment        string `form:"comment"`
}

// CreateLead godoc
// @Summary Submit a purchase request
// @Tags leads
// @Accept x-www-form-urlencoded
// @Param name formData string true "Contact name"
// @Param phone formData string true "Contact phone"
// @Param email formData string false "Contact email"
// @Param car_id formData string false "Catalog car ID"
// @Param preferred_brand formData string false "Preferred brand"
// @Param preferred_model formData string false "Preferred model"
// @Param preferred_country formData string false "Preferred country of origin"
// @Param budget formData string false "Budget"
// @Param comment formData string false "Comment"
// @Success 303
// @Router /lead [post]
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user := middleware.CurrentUser(c)
	_, err := h.leadService.CreateLead(c.Request().Context(), service.CreateLeadInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		CarID:          req.CarID,
		PreferredBrand: req.PreferredBrand,
		PreferredModel: req.PreferredModel,
		Country:        req.Country,
		Budget:         req.Budget,
		Comment:        req.Comment,
	}, user.ID)
	if err != nil {
		if apperrors.IsValidation(err) {
			flash.Set(c, flash.LevelError, err.Error())
			return c.Redirect(http.StatusSeeOther, "/#request")
		}
		return err
	}

	flash.Set(c, flash.LevelSuccess, "Request received! Our manager will contact you shortly.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// ListLeads godoc
// @Summary List purchase requests
// @Description Admin-only view of all requests with car and account details.
// @Tags leads
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c echo.Context) error {
	leads, err := h.leadService.ListLeads(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"leads":  leads,
		"notice": flash.Pop(c),
	})
}
