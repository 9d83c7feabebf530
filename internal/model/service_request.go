package model

import "time"

// RequestKind separates cleaning jobs from maintenance jobs.
type RequestKind string

const (
	RequestKindCleaning    RequestKind = "cleaning"
	RequestKindMaintenance RequestKind = "maintenance"
)

// RequestStatus is the work state of a service request.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// Terminal reports whether no further transitions are allowed.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// CanTransition reports whether a request may move from s to next.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	switch s {
	case RequestStatusOpen:
		return next == RequestStatusInProgress || next == RequestStatusCancelled
	case RequestStatusInProgress:
		return next == RequestStatusCompleted || next == RequestStatusCancelled
	}
	return false
}

// ServiceRequest is a cleaning or maintenance job raised against a unit.
type ServiceRequest struct {
	ID            string        `json:"id"`
	Kind          RequestKind   `json:"kind" validate:"required,oneof=cleaning maintenance"`
	UnitID        string        `json:"unit_id" validate:"required,uuid"`
	Title         string        `json:"title" validate:"required,max=200"`
	Description   string        `json:"description,omitempty" validate:"max=4000"`
	Priority      string        `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status        RequestStatus `json:"status"`
	AssignedTo    string        `json:"assigned_to,omitempty" validate:"max=200"`
	ScheduledDate Date          `json:"scheduled_date"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	Cost          float64       `json:"cost" validate:"gte=0"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// StatusChange is the body of a status transition request.
type StatusChange struct {
	Status RequestStatus `json:"status" validate:"required,oneof=open in_progress completed cancelled"`
}
