package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

// CreateLeadInput carries the raw inquiry form fields. CarID and Budget
// arrive as strings; values that do not parse are stored as absent.
type CreateLeadInput struct {
	Name           string
	Phone          string
	Email          string
	CarID          string
	PreferredBrand string
	PreferredModel string
	Country        string
	Budget         string
	Comment        string
}

// LeadService handles customer purchase inquiries.
type LeadService interface {
	CreateLead(ctx context.Context, input CreateLeadInput, userID uint) (*model.Lead, error)
	ListLeads(ctx context.Context) ([]model.LeadDetail, error)
}

type leadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a lead intake service.
func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// CreateLead validates and records an inquiry owned by the given user. Name
// and phone are mandatory; everything else is optional and there is no
// duplicate detection.
func (s *leadService) CreateLead(ctx context.Context, input CreateLeadInput, userID uint) (*model.Lead, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, apperrors.NewValidation("Name and phone are required.")
	}

	lead := &model.Lead{
		Name:           name,
		Phone:          phone,
		Email:          strings.TrimSpace(input.Email),
		CarID:          parseIDPtr(input.CarID),
		PreferredBrand: strings.TrimSpace(input.PreferredBrand),
		PreferredModel: strings.TrimSpace(input.PreferredModel),
		Country:        input.Country,
		Budget:         parseIntPtr(input.Budget),
		Comment:        strings.TrimSpace(input.Comment),
		UserID:         &userID,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// ListLeads returns every inquiry newest first, enriched with the referenced
// car and owning user where those still exist.
func (s *leadService) ListLeads(ctx context.Context) ([]model.LeadDetail, error) {
	leads, err := s.leadRepo.ListWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}
