package mocks

import (
	"github.com/stretchr/testify/mock"

	"shgportal/internal/location"
	"shgportal/internal/service"
)

// MockLocationService is a mock implementation of service.LocationService.
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Districts() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockLocationService) Blocks(district string) []string {
	args := m.Called(district)
	return args.Get(0).([]string)
}

func (m *MockLocationService) GramPanchayats(district, block string) []string {
	args := m.Called(district, block)
	return args.Get(0).([]string)
}

func (m *MockLocationService) Villages(district, block, gramPanchayat string) []string {
	args := m.Called(district, block, gramPanchayat)
	return args.Get(0).([]string)
}

func (m *MockLocationService) SHGs(district, block, gramPanchayat, village string) []string {
	args := m.Called(district, block, gramPanchayat, village)
	return args.Get(0).([]string)
}

func (m *MockLocationService) SHG(p location.Path) (*service.SHGView, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SHGView), args.Error(1)
}
