package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shgportal/internal/service"
)

// MockNavigatorService is a mock implementation of service.NavigatorService.
type MockNavigatorService struct {
	mock.Mock
}

func (m *MockNavigatorService) State(userID uuid.UUID) service.NavigatorState {
	args := m.Called(userID)
	return args.Get(0).(service.NavigatorState)
}

func (m *MockNavigatorService) SelectDistrict(userID uuid.UUID, name string) service.NavigatorState {
	args := m.Called(userID, name)
	return args.Get(0).(service.NavigatorState)
}

func (m *MockNavigatorService) SelectBlock(userID uuid.UUID, name string) (service.NavigatorState, error) {
	args := m.Called(userID, name)
	return args.Get(0).(service.NavigatorState), args.Error(1)
}

func (m *MockNavigatorService) SelectGramPanchayat(userID uuid.UUID, name string) (service.NavigatorState, error) {
	args := m.Called(userID, name)
	return args.Get(0).(service.NavigatorState), args.Error(1)
}

func (m *MockNavigatorService) SelectVillage(userID uuid.UUID, name string) (service.NavigatorState, error) {
	args := m.Called(userID, name)
	return args.Get(0).(service.NavigatorState), args.Error(1)
}

func (m *MockNavigatorService) SelectSHG(userID uuid.UUID, name string) (service.NavigatorState, error) {
	args := m.Called(userID, name)
	return args.Get(0).(service.NavigatorState), args.Error(1)
}

func (m *MockNavigatorService) Reset(userID uuid.UUID) service.NavigatorState {
	args := m.Called(userID)
	return args.Get(0).(service.NavigatorState)
}

func (m *MockNavigatorService) Discard(userID uuid.UUID) {
	m.Called(userID)
}
