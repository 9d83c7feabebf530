package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockSettingsRepository struct {
	mock.Mock
}

var _ repository.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *model.Settings) (*model.Settings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}
