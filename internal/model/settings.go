package model

import "time"

// Settings is the single back-office configuration record edited on the settings page.
type Settings struct {
	CompanyName       string    `json:"company_name" validate:"required,max=200"`
	Currency          string    `json:"currency" validate:"required,iso4217"`
	Locale            string    `json:"locale" validate:"required,bcp47_language_tag"`
	DateFormat        string    `json:"date_format" validate:"required,oneof=iso us eu"`
	Timezone          string    `json:"timezone" validate:"required,timezone"`
	OverdueGraceDays  int       `json:"overdue_grace_days" validate:"min=0,max=90"`
	LowStockThreshold int       `json:"low_stock_threshold" validate:"min=0"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultSettings is returned until the settings page has been saved once.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:       "Property Management",
		Currency:          "USD",
		Locale:            "en-US",
		DateFormat:        "iso",
		Timezone:          "UTC",
		OverdueGraceDays:  5,
		LowStockThreshold: 5,
	}
}
