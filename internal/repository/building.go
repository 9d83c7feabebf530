package repository

import (
	"context"

	"propdesk/internal/model"
)

// BuildingFilter narrows building listings.
type BuildingFilter struct {
	CityID     string
	DistrictID string
	OwnerID    string
	Query      string
}

// BuildingRepository persists buildings together with their ownership shares.
// Create and Update write the building row and its owners atomically.
type BuildingRepository interface {
	Create(ctx context.Context, b *model.Building) (*model.Building, error)
	FindByID(ctx context.Context, id string) (*model.Building, error)
	List(ctx context.Context, f BuildingFilter, pq PageQuery) (*PageResult[model.Building], error)
	Update(ctx context.Context, b *model.Building) (*model.Building, error)
	Delete(ctx context.Context, id string) error
}
