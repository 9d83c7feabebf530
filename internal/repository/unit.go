package repository

import (
	"context"

	"propdesk/internal/model"
)

// UnitFilter narrows unit listings.
type UnitFilter struct {
	BuildingID string
	CityID     string
	DistrictID string
	OwnerID    string
	Status     string
	Type       string
}

// UnitRepository persists units.
type UnitRepository interface {
	Create(ctx context.Context, u *model.Unit) (*model.Unit, error)
	FindByID(ctx context.Context, id string) (*model.Unit, error)
	List(ctx context.Context, f UnitFilter, pq PageQuery) (*PageResult[model.Unit], error)
	Update(ctx context.Context, u *model.Unit) (*model.Unit, error)
	SetStatus(ctx context.Context, id string, status model.UnitStatus) error
	// SyncOccupancy marks vacant units with an active lease covering today as
	// occupied and occupied units without one as vacant. Units under
	// maintenance are left alone.
	SyncOccupancy(ctx context.Context, today model.Date) (occupied, vacated int64, err error)
	Delete(ctx context.Context, id string) error
}
