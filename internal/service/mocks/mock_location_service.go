package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) CreateCity(ctx context.Context, c *model.City) (*model.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockLocationService) GetCity(ctx context.Context, id string) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockLocationService) ListCities(ctx context.Context, f repository.CityFilter, p service.Page) (*service.ListResult[model.City], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.City]), args.Error(1)
}

func (m *MockLocationService) UpdateCity(ctx context.Context, id string, c *model.City) (*model.City, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockLocationService) DeleteCity(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationService) CreateDistrict(ctx context.Context, d *model.District) (*model.District, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockLocationService) GetDistrict(ctx context.Context, id string) (*model.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockLocationService) ListDistricts(ctx context.Context, f repository.DistrictFilter, p service.Page) (*service.ListResult[model.District], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.District]), args.Error(1)
}

func (m *MockLocationService) DistrictsByCity(ctx context.Context, cityID string) ([]model.District, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.District), args.Error(1)
}

func (m *MockLocationService) UpdateDistrict(ctx context.Context, id string, d *model.District) (*model.District, error) {
	args := m.Called(ctx, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockLocationService) DeleteDistrict(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
