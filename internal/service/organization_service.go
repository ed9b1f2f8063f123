package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/port"
)

// CreateOrganizationInput is the DTO for registering an organization.
type CreateOrganizationInput struct {
	Name           string                  `json:"name" binding:"required"`
	Type           domain.OrganizationType `json:"type" binding:"required"`
	District       string                  `json:"district" binding:"required"`
	Block          string                  `json:"block"`
	RegistrationNo string                  `json:"registration_no" binding:"required"`
	ContactName    string                  `json:"contact_name"`
	ContactPhone   string                  `json:"contact_phone"`
}

// UpdateOrganizationInput is the DTO for updating an organization.
type UpdateOrganizationInput struct {
	Name           *string                  `json:"name"`
	Type           *domain.OrganizationType `json:"type"`
	District       *string                  `json:"district"`
	Block          *string                  `json:"block"`
	RegistrationNo *string                  `json:"registration_no"`
	ContactName    *string                  `json:"contact_name"`
	ContactPhone   *string                  `json:"contact_phone"`
	IsActive       *bool                    `json:"is_active"`
}

// OrganizationService defines the organization management contract.
type OrganizationService interface {
	Create(ctx context.Context, actor Actor, input CreateOrganizationInput) (*domain.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	List(ctx context.Context, actor Actor, filter domain.OrganizationFilter, offset, limit int) ([]domain.Organization, int, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrganizationInput) (*domain.Organization, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type organizationService struct {
	repo port.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService implementation.
func NewOrganizationService(repo port.OrganizationRepository) OrganizationService {
	return &organizationService{repo: repo}
}

func (s *organizationService) Create(ctx context.Context, actor Actor, input CreateOrganizationInput) (*domain.Organization, error) {
	if !domain.ValidOrganizationTypes[input.Type] {
		return nil, domain.ErrInvalidOrgType
	}
	if err := actor.authorize(input.District, input.Block); err != nil {
		return nil, err
	}

	org := &domain.Organization{
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		District:       input.District,
		Block:          input.Block,
		RegistrationNo: strings.TrimSpace(input.RegistrationNo),
		ContactName:    input.ContactName,
		ContactPhone:   input.ContactPhone,
		IsActive:       true,
		CreatedBy:      actor.UserID,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

// List narrows the filter to the actor's jurisdiction. A filter that asks
// for another district or block is rejected.
func (s *organizationService) List(ctx context.Context, actor Actor, filter domain.OrganizationFilter, offset, limit int) ([]domain.Organization, int, error) {
	if actor.Scope.District != "" {
		if filter.District != "" && filter.District != actor.Scope.District {
			return nil, 0, domain.ErrOutOfJurisdiction
		}
		filter.District = actor.Scope.District
	}
	if actor.Scope.Block != "" {
		if filter.Block != "" && filter.Block != actor.Scope.Block {
			return nil, 0, domain.ErrOutOfJurisdiction
		}
		filter.Block = actor.Scope.Block
	}
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *organizationService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrganizationInput) (*domain.Organization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.authorize(org.District, org.Block); err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		if !domain.ValidOrganizationTypes[*input.Type] {
			return nil, domain.ErrInvalidOrgType
		}
		org.Type = *input.Type
	}
	if input.District != nil {
		org.District = *input.District
	}
	if input.Block != nil {
		org.Block = *input.Block
	}
	if input.RegistrationNo != nil {
		org.RegistrationNo = strings.TrimSpace(*input.RegistrationNo)
	}
	if input.ContactName != nil {
		org.ContactName = *input.ContactName
	}
	if input.ContactPhone != nil {
		org.ContactPhone = *input.ContactPhone
	}
	if input.IsActive != nil {
		org.IsActive = *input.IsActive
	}
	if err := actor.authorize(org.District, org.Block); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.authorize(org.District, org.Block); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
