package model

import "time"

// Building is a managed property. Its owners' percentages must total 100.
type Building struct {
	ID         string          `json:"id"`
	Name       string          `json:"name" validate:"required,max=200"`
	Address    string          `json:"address" validate:"required,max=500"`
	CityID     string          `json:"city_id" validate:"required,uuid"`
	DistrictID string          `json:"district_id" validate:"required,uuid"`
	Floors     int             `json:"floors" validate:"min=1,max=300"`
	YearBuilt  int             `json:"year_built,omitempty" validate:"omitempty,min=1800,max=2200"`
	Owners     []BuildingOwner `json:"owners" validate:"required,min=1,dive"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BuildingOwner is one ownership share of a Building.
type BuildingOwner struct {
	OwnerID    string  `json:"owner_id" validate:"required,uuid"`
	OwnerName  string  `json:"owner_name,omitempty"`
	Percentage float64 `json:"percentage" validate:"gt=0,lte=100"`
}
