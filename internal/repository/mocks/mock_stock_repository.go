package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockStockRepository struct {
	mock.Mock
}

var _ repository.StockRepository = (*MockStockRepository)(nil)

func (m *MockStockRepository) Create(ctx context.Context, s *model.StockItem) (*model.StockItem, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockRepository) FindByID(ctx context.Context, id string) (*model.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockRepository) List(ctx context.Context, f repository.StockFilter, pq repository.PageQuery) (*repository.PageResult[model.StockItem], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.StockItem]), args.Error(1)
}

func (m *MockStockRepository) Update(ctx context.Context, s *model.StockItem) (*model.StockItem, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*model.StockItem, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}
