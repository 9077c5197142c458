package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

// recentEventsLimit caps the event list on the management page.
const recentEventsLimit = 20

// RecordEventInput carries the raw status form fields.
type RecordEventInput struct {
	CarID    string
	Status   string
	Location string
	ETA      string
	Comment  string
}

// ManagePage is the tracking management view data: the car list for the
// status form plus the most recent events.
type ManagePage struct {
	Cars   []model.Car                 `json:"cars"`
	Events []model.TrackingEventDetail `json:"events"`
}

// TrackingService handles shipment-status events.
type TrackingService interface {
	RecordEvent(ctx context.Context, input RecordEventInput) (*model.TrackingEvent, error)
	ListEvents(ctx context.Context, limit int) ([]model.TrackingEventDetail, error)
	LatestPerCar(ctx context.Context) (map[uint]model.TrackingEvent, error)
	ManageOverview(ctx context.Context) (*ManagePage, error)
}

type trackingService struct {
	events repository.TrackingRepository
	cars   repository.CarRepository
}

// NewTrackingService creates a tracking service over the event and car stores.
func NewTrackingService(events repository.TrackingRepository, cars repository.CarRepository) TrackingService {
	return &trackingService{events: events, cars: cars}
}

// RecordEvent validates and appends a status event, timestamped at
// insertion. The car reference is required but its existence is left to the
// store's constraint enforcement.
func (s *trackingService) RecordEvent(ctx context.Context, input RecordEventInput) (*model.TrackingEvent, error) {
	carID := parseIDPtr(input.CarID)
	status := strings.TrimSpace(input.Status)
	location := strings.TrimSpace(input.Location)
	if carID == nil || status == "" || location == "" {
		return nil, apperrors.NewValidation("Select a vehicle, status and location.")
	}

	event := &model.TrackingEvent{
		CarID:    *carID,
		Status:   status,
		Location: location,
		ETA:      strings.TrimSpace(input.ETA),
		Comment:  strings.TrimSpace(input.Comment),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create tracking event: %w", err)
	}
	return event, nil
}

// ListEvents returns events joined with their car, newest first, capped at
// limit when it is positive.
func (s *trackingService) ListEvents(ctx context.Context, limit int) ([]model.TrackingEventDetail, error) {
	events, err := s.events.ListWithCars(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return events, nil
}

// LatestPerCar returns the newest event for every car with history. When two
// events of one car share the maximum timestamp the map keeps an arbitrary
// one of them.
func (s *trackingService) LatestPerCar(ctx context.Context) (map[uint]model.TrackingEvent, error) {
	latest, err := s.events.LatestPerCar(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest tracking per car: %w", err)
	}

	result := make(map[uint]model.TrackingEvent, len(latest))
	for _, event := range latest {
		result[event.CarID] = event
	}
	return result, nil
}

// ManageOverview returns the management page data: every car ordered by
// brand and the most recent events.
func (s *trackingService) ManageOverview(ctx context.Context) (*ManagePage, error) {
	cars, err := s.cars.ListOrderedByBrand(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	events, err := s.events.ListWithCars(ctx, recentEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}

	return &ManagePage{Cars: cars, Events: events}, nil
}
