package repository

import (
	"context"

	"propdesk/internal/model"
)

// SettingsRepository persists the single settings record.
type SettingsRepository interface {
	// Get returns sql.ErrNoRows when settings have never been saved.
	Get(ctx context.Context) (*model.Settings, error)
	// Save upserts the record.
	Save(ctx context.Context, s *model.Settings) (*model.Settings, error)
}
