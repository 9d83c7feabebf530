package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) Create(ctx context.Context, v *model.StockItem) (*model.StockItem, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockService) Get(ctx context.Context, id string) (*model.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockService) List(ctx context.Context, f repository.StockFilter, p service.Page) (*service.ListResult[model.StockItem], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.StockItem]), args.Error(1)
}

func (m *MockStockService) Update(ctx context.Context, id string, v *model.StockItem) (*model.StockItem, error) {
	args := m.Called(ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockService) Adjust(ctx context.Context, id string, adj model.StockAdjustment) (*model.StockItem, error) {
	args := m.Called(ctx, id, adj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockItem), args.Error(1)
}

func (m *MockStockService) View(ctx context.Context, id string) (*service.StockItemView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StockItemView), args.Error(1)
}
