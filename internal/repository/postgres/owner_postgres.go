package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// OwnerPostgres is a PostgreSQL implementation of repository.OwnerRepository.
type OwnerPostgres struct {
	db *sql.DB
}

// NewOwnerPostgres creates a new OwnerPostgres repository.
func NewOwnerPostgres(db *sql.DB) *OwnerPostgres {
	return &OwnerPostgres{db: db}
}

var _ repository.OwnerRepository = (*OwnerPostgres)(nil)

const ownerColumns = `id, full_name, email, phone, national_id, notes, created_at, updated_at`

func scanOwner(row scanner) (*model.Owner, error) {
	var o model.Owner
	if err := row.Scan(
		&o.ID,
		&o.FullName,
		&o.Email,
		&o.Phone,
		&o.NationalID,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnerPostgres) Create(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	const q = `
		INSERT INTO owners (` + ownerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ownerColumns
	out, err := scanOwner(r.db.QueryRowContext(ctx, q,
		o.ID, o.FullName, o.Email, o.Phone, o.NationalID, o.Notes, o.CreatedAt, o.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *OwnerPostgres) FindByID(ctx context.Context, id string) (*model.Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`
	return scanOwner(r.db.QueryRowContext(ctx, q, id))
}

func (r *OwnerPostgres) FindByIDs(ctx context.Context, ids []string) ([]model.Owner, error) {
	if len(ids) == 0 {
		return []model.Owner{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT ` + ownerColumns + ` FROM owners WHERE id IN (` + placeholders(1, len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOwner)
}

func (r *OwnerPostgres) List(ctx context.Context, f repository.OwnerFilter, pq repository.PageQuery) (*repository.PageResult[model.Owner], error) {
	var w where
	if f.Query != "" {
		w.like(f.Query, "full_name", "email")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM owners`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+ownerColumns+` FROM owners`+w.String()+` ORDER BY full_name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanOwner)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Owner]{Items: items, Total: total}, nil
}

func (r *OwnerPostgres) Update(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	const q = `
		UPDATE owners
		SET full_name = $2, email = $3, phone = $4, national_id = $5, notes = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + ownerColumns
	out, err := scanOwner(r.db.QueryRowContext(ctx, q,
		o.ID, o.FullName, o.Email, o.Phone, o.NationalID, o.Notes, o.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete returns repository.ErrReferenced while the owner still holds shares or units.
func (r *OwnerPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM owners WHERE id = $1`, id)
}
