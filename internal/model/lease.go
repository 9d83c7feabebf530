package model

import "time"

// LeaseStatus is the stored lifecycle state of a lease.
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"

	// LeaseStatusUpcoming is never stored; views derive it for active
	// leases whose start date is in the future.
	LeaseStatusUpcoming LeaseStatus = "upcoming"
)

// Lease is a time-bounded rental agreement between a tenant and a unit.
type Lease struct {
	ID          string      `json:"id"`
	UnitID      string      `json:"unit_id" validate:"required,uuid"`
	TenantName  string      `json:"tenant_name" validate:"required,max=200"`
	TenantEmail string      `json:"tenant_email" validate:"required,email,max=254"`
	TenantPhone string      `json:"tenant_phone,omitempty" validate:"omitempty,e164"`
	StartDate   Date        `json:"start_date" validate:"required"`
	EndDate     Date        `json:"end_date" validate:"required"`
	MonthlyRent float64     `json:"monthly_rent" validate:"gte=0"`
	Deposit     float64     `json:"deposit" validate:"gte=0"`
	PaymentDay  int         `json:"payment_day" validate:"omitempty,min=1,max=28"`
	Status      LeaseStatus `json:"status"`
	Notes       string      `json:"notes,omitempty" validate:"max=2000"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EffectiveStatus reports the status as seen on the given day.
func (l Lease) EffectiveStatus(today Date) LeaseStatus {
	if l.Status == LeaseStatusActive && l.StartDate.After(today) {
		return LeaseStatusUpcoming
	}
	return l.Status
}

// Covers reports whether day falls inside the lease term, both ends included.
func (l Lease) Covers(day Date) bool {
	return !l.StartDate.After(day) && !l.EndDate.Before(day)
}

// TenantAutofill is what a form needs once a tenant has been picked:
// the tenant's current lease with its unit and building.
type TenantAutofill struct {
	LeaseID      string  `json:"lease_id"`
	TenantName   string  `json:"tenant_name"`
	TenantEmail  string  `json:"tenant_email"`
	UnitID       string  `json:"unit_id"`
	UnitNumber   string  `json:"unit_number"`
	BuildingID   string  `json:"building_id,omitempty"`
	BuildingName string  `json:"building_name,omitempty"`
	MonthlyRent  float64 `json:"monthly_rent"`
}
