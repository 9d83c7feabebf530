package repository

import (
	"context"

	"propdesk/internal/model"
)

// OwnerFilter narrows owner listings. Query matches name or email.
type OwnerFilter struct {
	Query string
}

// OwnerRepository persists owners.
type OwnerRepository interface {
	Create(ctx context.Context, o *model.Owner) (*model.Owner, error)
	FindByID(ctx context.Context, id string) (*model.Owner, error)
	// FindByIDs returns the owners that exist among ids; missing ids are simply absent.
	FindByIDs(ctx context.Context, ids []string) ([]model.Owner, error)
	List(ctx context.Context, f OwnerFilter, pq PageQuery) (*PageResult[model.Owner], error)
	Update(ctx context.Context, o *model.Owner) (*model.Owner, error)
	Delete(ctx context.Context, id string) error
}
