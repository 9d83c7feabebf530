package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockServiceRequestRepository struct {
	mock.Mock
}

var _ repository.ServiceRequestRepository = (*MockServiceRequestRepository)(nil)

func (m *MockServiceRequestRepository) Create(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) FindByID(ctx context.Context, id string) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) List(ctx context.Context, f repository.ServiceRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.ServiceRequest], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ServiceRequest]), args.Error(1)
}

func (m *MockServiceRequestRepository) Update(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
