package repository

import (
	"context"

	"propdesk/internal/model"
)

// CityFilter narrows city listings. Query matches the name case-insensitively.
type CityFilter struct {
	Query string
}

// CityRepository persists cities.
type CityRepository interface {
	Create(ctx context.Context, c *model.City) (*model.City, error)
	FindByID(ctx context.Context, id string) (*model.City, error)
	FindByName(ctx context.Context, name string) (*model.City, error)
	List(ctx context.Context, f CityFilter, pq PageQuery) (*PageResult[model.City], error)
	Update(ctx context.Context, c *model.City) (*model.City, error)
	Delete(ctx context.Context, id string) error
}

// DistrictFilter narrows district listings.
type DistrictFilter struct {
	CityID string
	Query  string
}

// DistrictRepository persists districts.
type DistrictRepository interface {
	Create(ctx context.Context, d *model.District) (*model.District, error)
	FindByID(ctx context.Context, id string) (*model.District, error)
	FindByName(ctx context.Context, cityID, name string) (*model.District, error)
	List(ctx context.Context, f DistrictFilter, pq PageQuery) (*PageResult[model.District], error)
	Update(ctx context.Context, d *model.District) (*model.District, error)
	Delete(ctx context.Context, id string) error
	// InUse reports whether any building or unit references the district.
	InUse(ctx context.Context, id string) (bool, error)
}
