package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const entitySettings = "settings"

// SettingsService reads and writes the single settings record.
type SettingsService interface {
	// Get returns model.DefaultSettings until the record is saved for the first time.
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, s *model.Settings) (*model.Settings, error)
}

type settingsService struct {
	repo   repository.SettingsRepository
	events *events.Emitter
	clock  clock
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo repository.SettingsRepository, em *events.Emitter) SettingsService {
	return &settingsService{repo: repo, events: em}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	out, err := s.repo.Get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		def := model.DefaultSettings()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *settingsService) Update(ctx context.Context, in *model.Settings) (*model.Settings, error) {
	validation.TrimSpace(&in.CompanyName, &in.Currency, &in.Locale, &in.DateFormat, &in.Timezone)
	in.Currency = strings.ToUpper(in.Currency)
	if err := validation.Struct(in).Err(); err != nil {
		return nil, err
	}
	in.UpdatedAt = s.clock.now()
	out, err := s.repo.Save(ctx, in)
	if err != nil {
		return nil, err
	}
	s.events.Emit(ctx, entitySettings, events.ActionUpdated, "1")
	return out, nil
}

// location resolves the configured time zone, falling back to UTC.
func location(set *model.Settings) *time.Location {
	if set == nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(set.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
