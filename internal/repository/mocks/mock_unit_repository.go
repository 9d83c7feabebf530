package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockUnitRepository struct {
	mock.Mock
}

var _ repository.UnitRepository = (*MockUnitRepository)(nil)

func (m *MockUnitRepository) Create(ctx context.Context, u *model.Unit) (*model.Unit, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepository) List(ctx context.Context, f repository.UnitFilter, pq repository.PageQuery) (*repository.PageResult[model.Unit], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Unit]), args.Error(1)
}

func (m *MockUnitRepository) Update(ctx context.Context, u *model.Unit) (*model.Unit, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUnitRepository) SyncOccupancy(ctx context.Context, today model.Date) (int64, int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockUnitRepository) SetStatus(ctx context.Context, id string, status model.UnitStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
