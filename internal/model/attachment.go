package model

import "time"

// Attachment entity types.
const (
	AttachmentUnit           = "unit"
	AttachmentLease          = "lease"
	AttachmentServiceRequest = "service_request"
)

// Attachment is a file stored in object storage and linked to a unit, lease or service request.
type Attachment struct {
	ID          string    `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttachmentLink is an attachment plus a time-limited download URL.
type AttachmentLink struct {
	Attachment
	URL string `json:"url"`
}
