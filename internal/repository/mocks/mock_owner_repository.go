package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockOwnerRepository struct {
	mock.Mock
}

var _ repository.OwnerRepository = (*MockOwnerRepository)(nil)

func (m *MockOwnerRepository) Create(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id string) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerRepository) List(ctx context.Context, f repository.OwnerFilter, pq repository.PageQuery) (*repository.PageResult[model.Owner], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Owner]), args.Error(1)
}

func (m *MockOwnerRepository) Update(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOwnerRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Owner, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Owner), args.Error(1)
}
