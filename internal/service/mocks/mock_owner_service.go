package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) Create(ctx context.Context, v *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerService) Get(ctx context.Context, id string) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerService) List(ctx context.Context, f repository.OwnerFilter, p service.Page) (*service.ListResult[model.Owner], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Owner]), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, id string, v *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockOwnerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
