package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) MemberReport(ctx context.Context, actor service.Actor, path location.Path, format domain.ReportFormat) (*service.ReportFile, error) {
	args := m.Called(ctx, actor, path, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportFile), args.Error(1)
}

func (m *MockReportService) SummaryReport(ctx context.Context, actor service.Actor, format domain.ReportFormat) (*service.ReportFile, error) {
	args := m.Called(ctx, actor, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportFile), args.Error(1)
}

func (m *MockReportService) PublishMemberReport(ctx context.Context, actor service.Actor, path location.Path, recipientName string) (*service.PublishedReport, error) {
	args := m.Called(ctx, actor, path, recipientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PublishedReport), args.Error(1)
}
