package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// SettingsPostgres stores the settings record in a single-row table keyed by id = 1.
type SettingsPostgres struct {
	db *sql.DB
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

const settingsColumns = `company_name, currency, locale, date_format, timezone, overdue_grace_days, low_stock_threshold, updated_at`

func scanSettings(row scanner) (*model.Settings, error) {
	var s model.Settings
	if err := row.Scan(
		&s.CompanyName,
		&s.Currency,
		&s.Locale,
		&s.DateFormat,
		&s.Timezone,
		&s.OverdueGraceDays,
		&s.LowStockThreshold,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsPostgres) Get(ctx context.Context) (*model.Settings, error) {
	const q = `SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`
	return scanSettings(r.db.QueryRowContext(ctx, q))
}

func (r *SettingsPostgres) Save(ctx context.Context, s *model.Settings) (*model.Settings, error) {
	const q = `
		INSERT INTO settings (id, ` + settingsColumns + `)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			currency = EXCLUDED.currency,
			locale = EXCLUDED.locale,
			date_format = EXCLUDED.date_format,
			timezone = EXCLUDED.timezone,
			overdue_grace_days = EXCLUDED.overdue_grace_days,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + settingsColumns
	return scanSettings(r.db.QueryRowContext(ctx, q,
		s.CompanyName, s.Currency, s.Locale, s.DateFormat, s.Timezone, s.OverdueGraceDays, s.LowStockThreshold, s.UpdatedAt,
	))
}
