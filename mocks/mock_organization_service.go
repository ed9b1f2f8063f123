package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shgportal/internal/domain"
	"shgportal/internal/service"
)

// MockOrganizationService is a mock implementation of service.OrganizationService.
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) Create(ctx context.Context, actor service.Actor, input service.CreateOrganizationInput) (*domain.Organization, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationService) List(ctx context.Context, actor service.Actor, filter domain.OrganizationFilter, offset, limit int) ([]domain.Organization, int, error) {
	args := m.Called(ctx, actor, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Organization), args.Int(1), args.Error(2)
}

func (m *MockOrganizationService) Update(ctx context.Context, actor service.Actor, id uuid.UUID, input service.UpdateOrganizationInput) (*domain.Organization, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationService) Delete(ctx context.Context, actor service.Actor, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
