package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/middleware"
	"asiadrive/internal/model"
	"asiadrive/internal/service"
)

// MockLeadService is a mock implementation of service.LeadService.
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) CreateLead(ctx context.Context, input service.CreateLeadInput, userID uint) (*model.Lead, error) {
	args := m.Called(ctx, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lead), args.Error(1)
}

func (m *MockLeadService) ListLeads(ctx context.Context) ([]model.LeadDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeadDetail), args.Error(1)
}

func TestLeadHandler_CreateLead(t *testing.T) {
	t.Run("inquiry is attributed to the signed-in user", func(t *testing.T) {
		mockLeads := new(MockLeadService)
		mockLeads.On("CreateLead", mock.Anything, mock.AnythingOfType("service.CreateLeadInput"), uint(42)).
			Return(&model.Lead{ID: 1, Name: "Ivan"}, nil)

		c, rec := newFormContext(t, "/lead", url.Values{
			"name":  {"Ivan"},
			"phone": {"+7 900 123 45 67"},
		})
		c.Set(middleware.ContextUserKey, &model.User{ID: 42, Role: model.RoleCustomer})

		handler := NewLeadHandler(mockLeads)
		require.NoError(t, handler.CreateLead(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		mockLeads.AssertExpectations(t)
	})

	t.Run("validation failure returns to the request form anchor", func(t *testing.T) {
		mockLeads := new(MockLeadService)
		mockLeads.On("CreateLead", mock.Anything, mock.AnythingOfType("service.CreateLeadInput"), uint(42)).
			Return(nil, apperrors.NewValidation("Name and phone are required."))

		c, rec := newFormContext(t, "/lead", url.Values{
			"name": {"Ivan"},
		})
		c.Set(middleware.ContextUserKey, &model.User{ID: 42, Role: model.RoleCustomer})

		handler := NewLeadHandler(mockLeads)
		require.NoError(t, handler.CreateLead(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#request", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	mockLeads := new(MockLeadService)
	mockLeads.On("ListLeads", mock.Anything).Return([]model.LeadDetail{
		{Lead: model.Lead{ID: 1, Name: "Ivan"}},
	}, nil)

	c, rec := newFormContext(t, "/leads", url.Values{})
	handler := NewLeadHandler(mockLeads)
	require.NoError(t, handler.ListLeads(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ivan")
}
