package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shgportal/internal/location"
)

// MockLocationRepo is a mock implementation of port.LocationRepository.
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) LoadTree(ctx context.Context) (*location.Tree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Tree), args.Error(1)
}

func (m *MockLocationRepo) ReplaceTree(ctx context.Context, tree *location.Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}
