package model

import "time"

// UnitType enumerates rentable property kinds.
type UnitType string

const (
	UnitTypeApartment UnitType = "apartment"
	UnitTypeVilla     UnitType = "villa"
	UnitTypeOffice    UnitType = "office"
	UnitTypeShop      UnitType = "shop"
)

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// Unit is a rentable property. It always resolves to one city, district and owner;
// when it sits inside a building its location is inherited from the building.
type Unit struct {
	ID          string     `json:"id"`
	UnitNumber  string     `json:"unit_number" validate:"required,max=50"`
	Type        UnitType   `json:"type" validate:"required,oneof=apartment villa office shop"`
	BuildingID  string     `json:"building_id,omitempty" validate:"omitempty,uuid"`
	CityID      string     `json:"city_id" validate:"omitempty,uuid"`
	DistrictID  string     `json:"district_id" validate:"omitempty,uuid"`
	OwnerID     string     `json:"owner_id" validate:"required,uuid"`
	Floor       int        `json:"floor"`
	Bedrooms    int        `json:"bedrooms" validate:"min=0,max=50"`
	Bathrooms   int        `json:"bathrooms" validate:"min=0,max=50"`
	AreaSqm     float64    `json:"area_sqm" validate:"gt=0"`
	MonthlyRent float64    `json:"monthly_rent" validate:"gte=0"`
	Status      UnitStatus `json:"status" validate:"omitempty,oneof=vacant occupied maintenance"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
