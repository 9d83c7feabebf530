package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockLeaseRepository struct {
	mock.Mock
}

var _ repository.LeaseRepository = (*MockLeaseRepository)(nil)

func (m *MockLeaseRepository) Create(ctx context.Context, l *model.Lease) (*model.Lease, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindByID(ctx context.Context, id string) (*model.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseRepository) List(ctx context.Context, f repository.LeaseFilter, pq repository.PageQuery) (*repository.PageResult[model.Lease], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Lease]), args.Error(1)
}

func (m *MockLeaseRepository) Update(ctx context.Context, l *model.Lease) (*model.Lease, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lease), args.Error(1)
}

func (m *MockLeaseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaseRepository) HasOverlap(ctx context.Context, unitID string, start, end model.Date, excludeID string) (bool, error) {
	args := m.Called(ctx, unitID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeaseRepository) FindCurrentByTenant(ctx context.Context, query string, limit int) ([]model.TenantAutofill, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TenantAutofill), args.Error(1)
}

func (m *MockLeaseRepository) ExpireEnded(ctx context.Context, today model.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}
