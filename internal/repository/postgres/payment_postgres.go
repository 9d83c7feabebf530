package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// PaymentPostgres is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentPostgres struct {
	db *sql.DB
}

// NewPaymentPostgres creates a new PaymentPostgres repository.
func NewPaymentPostgres(db *sql.DB) *PaymentPostgres {
	return &PaymentPostgres{db: db}
}

var _ repository.PaymentRepository = (*PaymentPostgres)(nil)

// building_id is derived from the unit on read.
const paymentSelect = `
	SELECT p.id, COALESCE(p.lease_id::text, ''), p.unit_id, COALESCE(u.building_id::text, ''), p.tenant_name,
		p.amount, p.currency, p.due_date, p.paid_date, p.method, p.status, p.reference, p.created_at, p.updated_at
	FROM payments p
	JOIN units u ON u.id = p.unit_id`

const paymentColumns = `id, lease_id, unit_id, tenant_name, amount, currency, due_date, paid_date,
	method, status, reference, created_at, updated_at`

func scanPayment(row scanner) (*model.Payment, error) {
	var p model.Payment
	if err := row.Scan(
		&p.ID,
		&p.LeaseID,
		&p.UnitID,
		&p.BuildingID,
		&p.TenantName,
		&p.Amount,
		&p.Currency,
		&p.DueDate,
		&p.PaidDate,
		&p.Method,
		&p.Status,
		&p.Reference,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentPostgres) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	const q = `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, nullString(p.LeaseID), p.UnitID, p.TenantName, p.Amount, p.Currency, p.DueDate, p.PaidDate,
		p.Method, p.Status, p.Reference, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return r.FindByID(ctx, p.ID)
}

func (r *PaymentPostgres) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	return scanPayment(r.db.QueryRowContext(ctx, paymentSelect+` WHERE p.id = $1`, id))
}

func (r *PaymentPostgres) List(ctx context.Context, f repository.PaymentFilter, pq repository.PageQuery) (*repository.PageResult[model.Payment], error) {
	var w where
	if f.UnitID != "" {
		w.add("p.unit_id = ?", f.UnitID)
	}
	if f.LeaseID != "" {
		w.add("p.lease_id = ?", f.LeaseID)
	}
	if f.Status != "" {
		w.add("p.status = ?", f.Status)
	}
	if !f.DueFrom.IsZero() {
		w.add("p.due_date >= ?", f.DueFrom)
	}
	if !f.DueTo.IsZero() {
		w.add("p.due_date <= ?", f.DueTo)
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM payments p`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, paymentSelect+w.String()+` ORDER BY p.due_date DESC, p.id DESC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanPayment)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Payment]{Items: items, Total: total}, nil
}

func (r *PaymentPostgres) Update(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	const q = `
		UPDATE payments
		SET lease_id = $2, unit_id = $3, tenant_name = $4, amount = $5, currency = $6, due_date = $7,
			paid_date = $8, method = $9, status = $10, reference = $11, updated_at = $12
		WHERE id = $1`
	err := execAffected(ctx, r.db, q,
		p.ID, nullString(p.LeaseID), p.UnitID, p.TenantName, p.Amount, p.Currency, p.DueDate,
		p.PaidDate, p.Method, p.Status, p.Reference, p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, p.ID)
}

func (r *PaymentPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM payments WHERE id = $1`, id)
}

func (r *PaymentPostgres) MarkOverdue(ctx context.Context, cutoff model.Date) (int64, error) {
	const q = `UPDATE payments SET status = 'overdue', updated_at = now() WHERE status = 'pending' AND due_date < $1`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
