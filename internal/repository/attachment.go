package repository

import (
	"context"

	"propdesk/internal/model"
)

// AttachmentRepository defines data access for attachment metadata using SQL queries only.
// No business logic here, only persistence.
type AttachmentRepository interface {
	// Create inserts a new attachment record.
	Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error)

	// FindByID returns an attachment by its ID.
	FindByID(ctx context.Context, id string) (*model.Attachment, error)

	// ListByEntity returns every attachment of one entity, newest first.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]model.Attachment, error)

	// CountByEntity returns how many attachments one entity holds.
	CountByEntity(ctx context.Context, entityType, entityID string) (int, error)

	// Delete removes an attachment by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
