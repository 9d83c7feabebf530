package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// AttachmentPostgres is a PostgreSQL implementation of repository.AttachmentRepository.
type AttachmentPostgres struct {
	db *sql.DB
}

// NewAttachmentPostgres creates a new AttachmentPostgres repository.
func NewAttachmentPostgres(db *sql.DB) *AttachmentPostgres {
	return &AttachmentPostgres{db: db}
}

var _ repository.AttachmentRepository = (*AttachmentPostgres)(nil)

const attachmentColumns = `id, entity_type, entity_id, filename, storage_path, size, content_type, created_at`

func scanAttachment(row scanner) (*model.Attachment, error) {
	var a model.Attachment
	if err := row.Scan(
		&a.ID,
		&a.EntityType,
		&a.EntityID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new attachment row and returns the stored record.
func (r *AttachmentPostgres) Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error) {
	const q = `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + attachmentColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.EntityType,
		a.EntityID,
		a.Filename,
		a.StoragePath,
		a.Size,
		a.ContentType,
		a.CreatedAt,
	)
	out, err := scanAttachment(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// FindByID fetches a single attachment by its ID.
func (r *AttachmentPostgres) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	const q = `SELECT ` + attachmentColumns + ` FROM attachments WHERE id = $1`
	return scanAttachment(r.db.QueryRowContext(ctx, q, id))
}

// ListByEntity returns the attachments of one entity, newest first.
func (r *AttachmentPostgres) ListByEntity(ctx context.Context, entityType, entityID string) ([]model.Attachment, error) {
	const q = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, entityType, entityID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanAttachment)
}

// CountByEntity counts the attachments of one entity.
func (r *AttachmentPostgres) CountByEntity(ctx context.Context, entityType, entityID string) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM attachments WHERE entity_type = $1 AND entity_id = $2`, entityType, entityID)
}

// Delete removes an attachment by ID. It does not return an error if the row does not exist.
func (r *AttachmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM attachments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
