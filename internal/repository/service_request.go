package repository

import (
	"context"

	"propdesk/internal/model"
)

// ServiceRequestFilter narrows service request listings.
type ServiceRequestFilter struct {
	UnitID   string
	Kind     string
	Status   string
	Priority string
}

// ServiceRequestRepository persists cleaning and maintenance requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*model.ServiceRequest, error)
	List(ctx context.Context, f ServiceRequestFilter, pq PageQuery) (*PageResult[model.ServiceRequest], error)
	Update(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
}
