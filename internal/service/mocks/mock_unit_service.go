package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) Create(ctx context.Context, v *model.Unit) (*model.Unit, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitService) Get(ctx context.Context, id string) (*model.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitService) List(ctx context.Context, f repository.UnitFilter, p service.Page) (*service.ListResult[model.Unit], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Unit]), args.Error(1)
}

func (m *MockUnitService) Update(ctx context.Context, id string, v *model.Unit) (*model.Unit, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
