package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockServiceRequestService struct {
	mock.Mock
}

func (m *MockServiceRequestService) Create(ctx context.Context, v *model.ServiceRequest) (*model.ServiceRequest, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) Get(ctx context.Context, id string) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) List(ctx context.Context, f repository.ServiceRequestFilter, p service.Page) (*service.ListResult[model.ServiceRequest], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.ServiceRequest]), args.Error(1)
}

func (m *MockServiceRequestService) Update(ctx context.Context, id string, v *model.ServiceRequest) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRequestService) ChangeStatus(ctx context.Context, id string, next model.RequestStatus) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) View(ctx context.Context, id string) (*service.ServiceRequestView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ServiceRequestView), args.Error(1)
}
