package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) Create(ctx context.Context, v *model.Building) (*model.Building, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingService) Get(ctx context.Context, id string) (*model.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingService) List(ctx context.Context, f repository.BuildingFilter, p service.Page) (*service.ListResult[model.Building], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Building]), args.Error(1)
}

func (m *MockBuildingService) Update(ctx context.Context, id string, v *model.Building) (*model.Building, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
