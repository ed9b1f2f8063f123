package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shgportal/internal/domain"
	"shgportal/internal/service"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context, actor service.Actor) (*domain.DashboardStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) Breakdown(scope domain.Jurisdiction) []domain.AreaSummary {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.AreaSummary)
}
