package postgres

import (
	"context"
	"database/sql"
	"errors"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// StockPostgres is a PostgreSQL implementation of repository.StockRepository.
type StockPostgres struct {
	db *sql.DB
}

// NewStockPostgres creates a new StockPostgres repository.
func NewStockPostgres(db *sql.DB) *StockPostgres {
	return &StockPostgres{db: db}
}

var _ repository.StockRepository = (*StockPostgres)(nil)

const stockColumns = `id, name, sku, category, quantity, unit_cost, reorder_level, location, created_at, updated_at`

func scanStock(row scanner) (*model.StockItem, error) {
	var s model.StockItem
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.SKU,
		&s.Category,
		&s.Quantity,
		&s.UnitCost,
		&s.ReorderLevel,
		&s.Location,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.RefreshLowStock()
	return &s, nil
}

func (r *StockPostgres) Create(ctx context.Context, s *model.StockItem) (*model.StockItem, error) {
	const q = `
		INSERT INTO stock_items (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + stockColumns
	out, err := scanStock(r.db.QueryRowContext(ctx, q,
		s.ID, s.Name, s.SKU, s.Category, s.Quantity, s.UnitCost, s.ReorderLevel, s.Location, s.CreatedAt, s.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *StockPostgres) FindByID(ctx context.Context, id string) (*model.StockItem, error) {
	const q = `SELECT ` + stockColumns + ` FROM stock_items WHERE id = $1`
	return scanStock(r.db.QueryRowContext(ctx, q, id))
}

func (r *StockPostgres) List(ctx context.Context, f repository.StockFilter, pq repository.PageQuery) (*repository.PageResult[model.StockItem], error) {
	var w where
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Query != "" {
		w.like(f.Query, "name", "sku")
	}
	if f.LowStock {
		w.addRaw("quantity <= reorder_level")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM stock_items`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+stockColumns+` FROM stock_items`+w.String()+` ORDER BY name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanStock)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.StockItem]{Items: items, Total: total}, nil
}

func (r *StockPostgres) Update(ctx context.Context, s *model.StockItem) (*model.StockItem, error) {
	const q = `
		UPDATE stock_items
		SET name = $2, sku = $3, category = $4, quantity = $5, unit_cost = $6, reorder_level = $7,
			location = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + stockColumns
	out, err := scanStock(r.db.QueryRowContext(ctx, q,
		s.ID, s.Name, s.SKU, s.Category, s.Quantity, s.UnitCost, s.ReorderLevel, s.Location, s.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *StockPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM stock_items WHERE id = $1`, id)
}

// AdjustQuantity guards against negative stock in the WHERE clause so concurrent
// adjustments cannot race past zero. A miss is disambiguated with a second lookup.
func (r *StockPostgres) AdjustQuantity(ctx context.Context, id string, delta int) (*model.StockItem, error) {
	const q = `
		UPDATE stock_items
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + stockColumns
	out, err := scanStock(r.db.QueryRowContext(ctx, q, id, delta))
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, repository.ErrInsufficientStock
}
