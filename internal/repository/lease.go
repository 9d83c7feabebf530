package repository

import (
	"context"

	"propdesk/internal/model"
)

// LeaseFilter narrows lease listings. Tenant matches name or email.
type LeaseFilter struct {
	UnitID string
	Status string
	Tenant string
}

// LeaseRepository persists leases.
type LeaseRepository interface {
	Create(ctx context.Context, l *model.Lease) (*model.Lease, error)
	FindByID(ctx context.Context, id string) (*model.Lease, error)
	List(ctx context.Context, f LeaseFilter, pq PageQuery) (*PageResult[model.Lease], error)
	Update(ctx context.Context, l *model.Lease) (*model.Lease, error)
	Delete(ctx context.Context, id string) error

	// HasOverlap reports whether another active lease on unitID intersects [start, end].
	// excludeID is ignored when empty.
	HasOverlap(ctx context.Context, unitID string, start, end model.Date, excludeID string) (bool, error)
	// FindCurrentByTenant resolves tenants whose name or email matches query to their
	// active lease, unit and building.
	FindCurrentByTenant(ctx context.Context, query string, limit int) ([]model.TenantAutofill, error)
	// ExpireEnded marks active leases that ended before today as expired.
	ExpireEnded(ctx context.Context, today model.Date) (int64, error)
}
