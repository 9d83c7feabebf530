package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

type MockPaymentRepository struct {
	mock.Mock
}

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, f repository.PaymentFilter, pq repository.PageQuery) (*repository.PageResult[model.Payment], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Payment]), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) MarkOverdue(ctx context.Context, cutoff model.Date) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
