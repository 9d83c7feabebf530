package repository

import (
	"context"

	"propdesk/internal/model"
)

// PaymentFilter narrows payment listings. Zero dates are ignored.
type PaymentFilter struct {
	UnitID  string
	LeaseID string
	Status  string
	DueFrom model.Date
	DueTo   model.Date
}

// PaymentRepository persists payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) (*model.Payment, error)
	FindByID(ctx context.Context, id string) (*model.Payment, error)
	List(ctx context.Context, f PaymentFilter, pq PageQuery) (*PageResult[model.Payment], error)
	Update(ctx context.Context, p *model.Payment) (*model.Payment, error)
	Delete(ctx context.Context, id string) error

	// MarkOverdue flips pending payments due before cutoff to overdue.
	MarkOverdue(ctx context.Context, cutoff model.Date) (int64, error)
}
