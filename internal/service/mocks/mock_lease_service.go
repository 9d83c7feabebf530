package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockLeaseService struct {
	mock.Mock
}

func (m *MockLeaseService) Create(ctx context.Context, v *model.Lease) (*model.Lease, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseService) Get(ctx context.Context, id string) (*model.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseService) List(ctx context.Context, f repository.LeaseFilter, p service.Page) (*service.ListResult[model.Lease], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Lease]), args.Error(1)
}

func (m *MockLeaseService) Update(ctx context.Context, id string, v *model.Lease) (*model.Lease, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaseService) Terminate(ctx context.Context, id string) (*model.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseService) LookupTenant(ctx context.Context, query string) ([]model.TenantAutofill, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TenantAutofill), args.Error(1)
}

func (m *MockLeaseService) View(ctx context.Context, id string) (*service.LeaseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LeaseView), args.Error(1)
}
