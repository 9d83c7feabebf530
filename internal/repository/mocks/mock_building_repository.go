package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockBuildingRepository struct {
	mock.Mock
}

var _ repository.BuildingRepository = (*MockBuildingRepository)(nil)

func (m *MockBuildingRepository) Create(ctx context.Context, b *model.Building) (*model.Building, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingRepository) FindByID(ctx context.Context, id string) (*model.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingRepository) List(ctx context.Context, f repository.BuildingFilter, pq repository.PageQuery) (*repository.PageResult[model.Building], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Building]), args.Error(1)
}

func (m *MockBuildingRepository) Update(ctx context.Context, b *model.Building) (*model.Building, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Building), args.Error(1)
}

func (m *MockBuildingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
