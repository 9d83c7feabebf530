package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// LeasePostgres is a PostgreSQL implementation of repository.LeaseRepository.
type LeasePostgres struct {
	db *sql.DB
}

// NewLeasePostgres creates a new LeasePostgres repository.
func NewLeasePostgres(db *sql.DB) *LeasePostgres {
	return &LeasePostgres{db: db}
}

var _ repository.LeaseRepository = (*LeasePostgres)(nil)

const leaseColumns = `id, unit_id, tenant_name, tenant_email, tenant_phone, start_date, end_date,
	monthly_rent, deposit, payment_day, status, notes, created_at, updated_at`

func scanLease(row scanner) (*model.Lease, error) {
	var l model.Lease
	if err := row.Scan(
		&l.ID,
		&l.UnitID,
		&l.TenantName,
		&l.TenantEmail,
		&l.TenantPhone,
		&l.StartDate,
		&l.EndDate,
		&l.MonthlyRent,
		&l.Deposit,
		&l.PaymentDay,
		&l.Status,
		&l.Notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeasePostgres) Create(ctx context.Context, l *model.Lease) (*model.Lease, error) {
	const q = `
		INSERT INTO leases (` + leaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + leaseColumns
	out, err := scanLease(r.db.QueryRowContext(ctx, q,
		l.ID, l.UnitID, l.TenantName, l.TenantEmail, l.TenantPhone, l.StartDate, l.EndDate,
		l.MonthlyRent, l.Deposit, l.PaymentDay, l.Status, l.Notes, l.CreatedAt, l.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *LeasePostgres) FindByID(ctx context.Context, id string) (*model.Lease, error) {
	const q = `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`
	return scanLease(r.db.QueryRowContext(ctx, q, id))
}

func (r *LeasePostgres) List(ctx context.Context, f repository.LeaseFilter, pq repository.PageQuery) (*repository.PageResult[model.Lease], error) {
	var w where
	if f.UnitID != "" {
		w.add("unit_id = ?", f.UnitID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Tenant != "" {
		w.like(f.Tenant, "tenant_name", "tenant_email")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM leases`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+leaseColumns+` FROM leases`+w.String()+` ORDER BY start_date DESC, id DESC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanLease)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Lease]{Items: items, Total: total}, nil
}

func (r *LeasePostgres) Update(ctx context.Context, l *model.Lease) (*model.Lease, error) {
	const q = `
		UPDATE leases
		SET unit_id = $2, tenant_name = $3, tenant_email = $4, tenant_phone = $5, start_date = $6, end_date = $7,
			monthly_rent = $8, deposit = $9, payment_day = $10, status = $11, notes = $12, updated_at = $13
		WHERE id = $1
		RETURNING ` + leaseColumns
	out, err := scanLease(r.db.QueryRowContext(ctx, q,
		l.ID, l.UnitID, l.TenantName, l.TenantEmail, l.TenantPhone, l.StartDate, l.EndDate,
		l.MonthlyRent, l.Deposit, l.PaymentDay, l.Status, l.Notes, l.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *LeasePostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM leases WHERE id = $1`, id)
}

func (r *LeasePostgres) HasOverlap(ctx context.Context, unitID string, start, end model.Date, excludeID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM leases
			WHERE unit_id = $1
			  AND status = 'active'
			  AND start_date <= $3
			  AND end_date >= $2
			  AND ($4 = '' OR id::text <> $4)
		)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, unitID, start, end, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LeasePostgres) FindCurrentByTenant(ctx context.Context, query string, limit int) ([]model.TenantAutofill, error) {
	const q = `
		SELECT l.id, l.tenant_name, l.tenant_email, u.id, u.unit_number,
			COALESCE(b.id::text, ''), COALESCE(b.name, ''), l.monthly_rent
		FROM leases l
		JOIN units u ON u.id = l.unit_id
		LEFT JOIN buildings b ON b.id = u.building_id
		WHERE l.status = 'active'
		  AND (l.tenant_name ILIKE $1 ESCAPE '\' OR l.tenant_email ILIKE $1 ESCAPE '\')
		ORDER BY l.tenant_name ASC, l.start_date DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, containsPattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TenantAutofill, 0)
	for rows.Next() {
		var t model.TenantAutofill
		if err := rows.Scan(
			&t.LeaseID,
			&t.TenantName,
			&t.TenantEmail,
			&t.UnitID,
			&t.UnitNumber,
			&t.BuildingID,
			&t.BuildingName,
			&t.MonthlyRent,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *LeasePostgres) ExpireEnded(ctx context.Context, today model.Date) (int64, error) {
	const q = `UPDATE leases SET status = 'expired', updated_at = now() WHERE status = 'active' AND end_date < $1`
	res, err := r.db.ExecContext(ctx, q, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
