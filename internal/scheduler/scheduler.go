// Package scheduler runs the periodic lease, unit and payment status sweep.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

// Result counts the rows one sweep changed.
type Result struct {
	LeasesExpired   int64
	UnitsOccupied   int64
	UnitsVacated    int64
	PaymentsOverdue int64
}

// Sweeper expires ended leases, brings unit occupancy in line with the
// leases in force and flags late payments.
type Sweeper struct {
	leases   repository.LeaseRepository
	payments repository.PaymentRepository
	units    repository.UnitRepository
	settings service.SettingsService
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewSweeper constructs a Sweeper.
func NewSweeper(
	leases repository.LeaseRepository,
	payments repository.PaymentRepository,
	units repository.UnitRepository,
	settings service.SettingsService,
	log logrus.FieldLogger,
) *Sweeper {
	return &Sweeper{
		leases:   leases,
		payments: payments,
		units:    units,
		settings: settings,
		log:      log.WithField("component", "sweeper"),
		now:      time.Now,
	}
}

// Run performs one sweep. "Today" is the calendar day in the settings time zone.
// A payment is overdue once its due date plus the grace period has passed.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result

	set, err := s.settings.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("load settings: %w", err)
	}
	loc, err := time.LoadLocation(set.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := model.DateOf(s.now().In(loc))

	res.LeasesExpired, err = s.leases.ExpireEnded(ctx, today)
	if err != nil {
		return res, fmt.Errorf("expire leases: %w", err)
	}

	// Runs after expiry so units of leases that just ended are freed.
	res.UnitsOccupied, res.UnitsVacated, err = s.units.SyncOccupancy(ctx, today)
	if err != nil {
		return res, fmt.Errorf("sync unit occupancy: %w", err)
	}

	cutoff := today.AddDays(-set.OverdueGraceDays)
	res.PaymentsOverdue, err = s.payments.MarkOverdue(ctx, cutoff)
	if err != nil {
		return res, fmt.Errorf("mark overdue payments: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"today":            today.String(),
		"overdue_cutoff":   cutoff.String(),
		"leases_expired":   res.LeasesExpired,
		"units_occupied":   res.UnitsOccupied,
		"units_vacated":    res.UnitsVacated,
		"payments_overdue": res.PaymentsOverdue,
	}).Info("sweep finished")
	return res, nil
}

// Start schedules s on spec in loc. Each run is bounded by timeout and a run
// still in progress causes the next tick to be skipped.
func Start(s *Sweeper, spec string, loc *time.Location, timeout time.Duration) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(s.log))),
	)
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			s.log.WithError(err).Error("sweep failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule sweep %q: %w", spec, err)
	}
	c.Start()
	s.log.WithField("spec", spec).Info("sweep scheduled")
	return c, nil
}
