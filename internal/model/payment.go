package model

import "time"

// PaymentStatus is the collection state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod is how a payment was settled.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCheque       PaymentMethod = "cheque"
)

// Payment belongs to one unit and optionally to the lease it settles.
type Payment struct {
	ID         string        `json:"id"`
	LeaseID    string        `json:"lease_id,omitempty" validate:"omitempty,uuid"`
	UnitID     string        `json:"unit_id" validate:"omitempty,uuid"`
	BuildingID string        `json:"building_id,omitempty"`
	TenantName string        `json:"tenant_name,omitempty" validate:"max=200"`
	Amount     float64       `json:"amount" validate:"gt=0"`
	Currency   string        `json:"currency" validate:"omitempty,iso4217"`
	DueDate    Date          `json:"due_date" validate:"required"`
	PaidDate   Date          `json:"paid_date"`
	Method     PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=cash bank_transfer card cheque"`
	Status     PaymentStatus `json:"status" validate:"omitempty,oneof=pending paid overdue cancelled"`
	Reference  string        `json:"reference,omitempty" validate:"max=100"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PaymentSettlement records how a pending or overdue payment was paid.
// A zero PaidDate means today.
type PaymentSettlement struct {
	PaidDate  Date          `json:"paid_date"`
	Method    PaymentMethod `json:"method" validate:"required,oneof=cash bank_transfer card cheque"`
	Reference string        `json:"reference" validate:"max=100"`
}
