package model

import "time"

// City is a top-level location used by the city -> district cascade.
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Country   string    `json:"country" validate:"max=100"`
	CreatedAt time.Time `json:"created_at"`
}

// District belongs to exactly one City.
type District struct {
	ID        string    `json:"id"`
	CityID    string    `json:"city_id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
}
