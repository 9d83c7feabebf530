package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// ServiceRequestPostgres is a PostgreSQL implementation of repository.ServiceRequestRepository.
type ServiceRequestPostgres struct {
	db *sql.DB
}

// NewServiceRequestPostgres creates a new ServiceRequestPostgres repository.
func NewServiceRequestPostgres(db *sql.DB) *ServiceRequestPostgres {
	return &ServiceRequestPostgres{db: db}
}

var _ repository.ServiceRequestRepository = (*ServiceRequestPostgres)(nil)

const serviceRequestColumns = `id, kind, unit_id, title, description, priority, status, assigned_to,
	scheduled_date, completed_at, cost, created_at, updated_at`

func scanServiceRequest(row scanner) (*model.ServiceRequest, error) {
	var r model.ServiceRequest
	var completedAt sql.NullTime
	if err := row.Scan(
		&r.ID,
		&r.Kind,
		&r.UnitID,
		&r.Title,
		&r.Description,
		&r.Priority,
		&r.Status,
		&r.AssignedTo,
		&r.ScheduledDate,
		&completedAt,
		&r.Cost,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		r.CompletedAt = &t
	}
	return &r, nil
}

func (p *ServiceRequestPostgres) Create(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	const q = `
		INSERT INTO service_requests (` + serviceRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + serviceRequestColumns
	out, err := scanServiceRequest(p.db.QueryRowContext(ctx, q,
		r.ID, r.Kind, r.UnitID, r.Title, r.Description, r.Priority, r.Status, r.AssignedTo,
		r.ScheduledDate, r.CompletedAt, r.Cost, r.CreatedAt, r.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (p *ServiceRequestPostgres) FindByID(ctx context.Context, id string) (*model.ServiceRequest, error) {
	const q = `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE id = $1`
	return scanServiceRequest(p.db.QueryRowContext(ctx, q, id))
}

func (p *ServiceRequestPostgres) List(ctx context.Context, f repository.ServiceRequestFilter, pq repository.PageQuery) (*repository.PageResult[model.ServiceRequest], error) {
	var w where
	if f.UnitID != "" {
		w.add("unit_id = ?", f.UnitID)
	}
	if f.Kind != "" {
		w.add("kind = ?", f.Kind)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Priority != "" {
		w.add("priority = ?", f.Priority)
	}

	total, err := count(ctx, p.db, `SELECT COUNT(*) FROM service_requests`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := p.db.QueryContext(ctx, `SELECT `+serviceRequestColumns+` FROM service_requests`+w.String()+` ORDER BY created_at DESC, id DESC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanServiceRequest)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.ServiceRequest]{Items: items, Total: total}, nil
}

func (p *ServiceRequestPostgres) Update(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	const q = `
		UPDATE service_requests
		SET kind = $2, unit_id = $3, title = $4, description = $5, priority = $6, status = $7, assigned_to = $8,
			scheduled_date = $9, completed_at = $10, cost = $11, updated_at = $12
		WHERE id = $1
		RETURNING ` + serviceRequestColumns
	out, err := scanServiceRequest(p.db.QueryRowContext(ctx, q,
		r.ID, r.Kind, r.UnitID, r.Title, r.Description, r.Priority, r.Status, r.AssignedTo,
		r.ScheduledDate, r.CompletedAt, r.Cost, r.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (p *ServiceRequestPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, p.db, `DELETE FROM service_requests WHERE id = $1`, id)
}
