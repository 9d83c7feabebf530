package model

import "time"

// Owner is a person holding a stake in one or more buildings or units.
type Owner struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name" validate:"required,max=200"`
	Email      string    `json:"email" validate:"required,email,max=254"`
	Phone      string    `json:"phone,omitempty" validate:"omitempty,e164"`
	NationalID string    `json:"national_id,omitempty" validate:"max=50"`
	Notes      string    `json:"notes,omitempty" validate:"max=2000"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
