package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockCityRepository struct {
	mock.Mock
}

var _ repository.CityRepository = (*MockCityRepository)(nil)

func (m *MockCityRepository) Create(ctx context.Context, c *model.City) (*model.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockCityRepository) FindByID(ctx context.Context, id string) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context, f repository.CityFilter, pq repository.PageQuery) (*repository.PageResult[model.City], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.City]), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, c *model.City) (*model.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockCityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCityRepository) FindByName(ctx context.Context, name string) (*model.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

type MockDistrictRepository struct {
	mock.Mock
}

var _ repository.DistrictRepository = (*MockDistrictRepository)(nil)

func (m *MockDistrictRepository) Create(ctx context.Context, d *model.District) (*model.District, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockDistrictRepository) FindByID(ctx context.Context, id string) (*model.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockDistrictRepository) List(ctx context.Context, f repository.DistrictFilter, pq repository.PageQuery) (*repository.PageResult[model.District], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.District]), args.Error(1)
}

func (m *MockDistrictRepository) Update(ctx context.Context, d *model.District) (*model.District, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}

func (m *MockDistrictRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDistrictRepository) InUse(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDistrictRepository) FindByName(ctx context.Context, cityID, name string) (*model.District, error) {
	args := m.Called(ctx, cityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.District), args.Error(1)
}
