package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

// countryFacets is the fixed set of markets the catalog can be filtered by.
// Any other country value is silently ignored rather than rejected.
var countryFacets = map[string]struct{}{
	"china": {},
	"korea": {},
}

// CatalogPage is the catalog listing view data: the matching cars, the
// latest tracking event per car (absent key = no history yet) and the
// distinct country set for building the filter UI.
type CatalogPage struct {
	Cars            []model.Car                  `json:"cars"`
	Countries       []string                     `json:"countries"`
	SelectedCountry string                       `json:"selected_country"`
	SearchQuery     string                       `json:"search_query"`
	Tracking        map[uint]model.TrackingEvent `json:"tracking"`
}

// AddCarInput carries the raw add-vehicle form fields. Numeric fields arrive
// as strings and are coerced leniently.
type AddCarInput struct {
	Brand       string
	Model       string
	Year        string
	Price       string
	Mileage     string
	FuelType    string
	Country     string
	ImageURL    string
	Description string
}

// CatalogService exposes the vehicle catalog operations.
type CatalogService interface {
	ListCars(ctx context.Context, countryFilter, searchQuery string) (*CatalogPage, error)
	AddCar(ctx context.Context, input AddCarInput) (*model.Car, error)
	Countries(ctx context.Context) ([]string, error)
}

type catalogService struct {
	cars     repository.CarRepository
	tracking repository.TrackingRepository
}

// NewCatalogService creates a catalog service over the car and tracking stores.
func NewCatalogService(cars repository.CarRepository, tracking repository.TrackingRepository) CatalogService {
	return &catalogService{cars: cars, tracking: tracking}
}

// ListCars returns the catalog page for the given filters. The country
// filter is normalized and applied only when it names one of the known
// market facets; the search query matches brand or model case-insensitively.
// Both filters combine with AND; results are ordered newest model year first.
func (s *catalogService) ListCars(ctx context.Context, countryFilter, searchQuery string) (*CatalogPage, error) {
	normalized := normalizeCountry(countryFilter)
	applied := ""
	if _, ok := countryFacets[strings.ToLower(normalized)]; ok {
		applied = normalized
	}

	cars, err := s.cars.Search(ctx, applied, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("search cars: %w", err)
	}

	latest, err := s.tracking.LatestPerCar(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest tracking per car: %w", err)
	}
	trackingMap := make(map[uint]model.TrackingEvent, len(latest))
	for _, event := range latest {
		trackingMap[event.CarID] = event
	}

	countries, err := s.cars.DistinctCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct countries: %w", err)
	}

	return &CatalogPage{
		Cars:            cars,
		Countries:       countries,
		SelectedCountry: normalized,
		SearchQuery:     searchQuery,
		Tracking:        trackingMap,
	}, nil
}

// AddCar validates and inserts a new catalog listing. Brand, model, year,
// price and country must be present; numeric values that do not parse are
// stored as zero rather than rejected.
func (s *catalogService) AddCar(ctx context.Context, input AddCarInput) (*model.Car, error) {
	brand := strings.TrimSpace(input.Brand)
	carModel := strings.TrimSpace(input.Model)

	if brand == "" || carModel == "" ||
		strings.TrimSpace(input.Year) == "" ||
		strings.TrimSpace(input.Price) == "" ||
		strings.TrimSpace(input.Country) == "" {
		return nil, apperrors.NewValidation("Please fill in all required fields.")
	}

	car := &model.Car{
		Brand:       brand,
		Model:       carModel,
		Year:        parseIntOrZero(input.Year),
		Price:       parseIntOrZero(input.Price),
		Mileage:     parseIntOrZero(input.Mileage),
		FuelType:    input.FuelType,
		Country:     input.Country,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// Countries returns the sorted distinct set of origin countries.
func (s *catalogService) Countries(ctx context.Context) ([]string, error) {
	return s.cars.DistinctCountries(ctx)
}

// normalizeCountry trims, lowercases and title-cases the first letter, so
// " KOREA " and "korea" both become "Korea".
func normalizeCountry(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	runes := []rune(strings.ToLower(trimmed))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
