package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/model"
	"asiadrive/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCars(ctx context.Context, countryFilter, searchQuery string) (*service.CatalogPage, error) {
	args := m.Called(ctx, countryFilter, searchQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogPage), args.Error(1)
}

func (m *MockCatalogService) AddCar(ctx context.Context, input service.AddCarInput) (*model.Car, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCatalogService) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCatalogHandler_List(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	mockCatalog.On("ListCars", mock.Anything, "korea", "rio").Return(&service.CatalogPage{
		Cars:            []model.Car{{ID: 1, Brand: "Kia", Model: "Rio"}},
		Countries:       []string{"China", "Korea"},
		SelectedCountry: "Korea",
		SearchQuery:     "rio",
		Tracking:        map[uint]model.TrackingEvent{},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?country=korea&q=rio", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewCatalogHandler(mockCatalog)
	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Page service.CatalogPage `json:"page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Page.Cars, 1)
	assert.Equal(t, "Korea", body.Page.SelectedCountry)
	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_AddCar(t *testing.T) {
	t.Run("success redirects to the catalog", func(t *testing.T) {
		mockCatalog := new(MockCatalogService)
		mockCatalog.On("AddCar", mock.Anything, mock.AnythingOfType("service.AddCarInput")).
			Return(&model.Car{ID: 3, Brand: "Kia", Model: "Rio"}, nil)

		c, rec := newFormContext(t, "/add", url.Values{
			"brand":   {"Kia"},
			"model":   {"Rio"},
			"year":    {"2020"},
			"price":   {"11500"},
			"country": {"Korea"},
		})

		handler := NewCatalogHandler(mockCatalog)
		require.NoError(t, handler.AddCar(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("validation failure redirects back to the form", func(t *testing.T) {
		mockCatalog := new(MockCatalogService)
		mockCatalog.On("AddCar", mock.Anything, mock.AnythingOfType("service.AddCarInput")).
			Return(nil, apperrors.NewValidation("Please fill in all required fields."))

		c, rec := newFormContext(t, "/add", url.Values{
			"model": {"Rio"},
		})

		handler := NewCatalogHandler(mockCatalog)
		require.NoError(t, handler.AddCar(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/add", rec.Header().Get(echo.HeaderLocation))
	})
}
