package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yachai/yachai-cli/internal/models"
	"github.com/yachai/yachai-cli/internal/store"
)

// MockUserStore is a mock implementation of store.UserStore
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Current(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Save(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) ApplyScoreDelta(ctx context.Context, points int) (*models.User, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
