package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/flash"
	"asiadrive/internal/service"
)

// TrackingHandler serves shipment tracking views.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// RecordEventRequest represents a tracking event form submission.
type RecordEventRequest struct {
	CarID    string `form:"car_id"`
	Status   string `form:"status"`
	Location string `form:"location"`
	ETA      string `form:"eta"`
	Comment  string `form:"comment"`
}

// PublicFeed godoc
// @Summary Shipment tracking feed
// @Description Full history of tracking events, newest first.
// @Tags tracking
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tracking [get]
func (h *TrackingHandler) PublicFeed(c echo.Context) error {
	events, err := h.trackingService.ListEvents(c.Request().Context(), 0)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
		"notice": flash.Pop(c),
	})
}

// ManagePage godoc
// @Summary Tracking management page data
// @Description Vehicles available for updates plus recent events. Staff only.
// @Tags tracking
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tracking/manage [get]
func (h *TrackingHandler) ManagePage(c echo.Context) error {
	page, err := h.trackingService.ManageOverview(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	cars := make([]echo.Map, 0, len(page.Cars))
	for _, car := range page.Cars {
		cars = append(cars, echo.Map{
			"id":    car.ID,
			"brand": car.Brand,
			"model": car.Model,
			"year":  car.Year,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cars":   cars,
		"events": page.Events,
		"notice": flash.Pop(c),
	})
}

// RecordEvent godoc
// @Summary Record a tracking event
// @Tags tracking
// @Accept x-www-form-urlencoded
// @Param car_id formData string true "Catalog car ID"
// @Param status formData string true "Shipment status"
// @Param location formData string true "Current location"
// @Param eta formData string false "Estimated arrival"
// @Param comment formData string false "Comment"
// @Success 303
// @Router /tracking/manage [post]
func (h *TrackingHandler) RecordEvent(c echo.Context) error {
	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	_, err := h.trackingService.RecordEvent(c.Request().Context(), service.RecordEventInput{
		CarID:    req.CarID,
		Status:   req.Status,
		Location: req.Location,
		ETA:      req.ETA,
		Comment:  req.Comment,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			flash.Set(c, flash.LevelError, err.Error())
			return c.Redirect(http.StatusSeeOther, "/tracking/manage")
		}
		return err
	}

	flash.Set(c, flash.LevelSuccess, "Tracking update saved.")
	return c.Redirect(http.StatusSeeOther, "/tracking/manage")
}
