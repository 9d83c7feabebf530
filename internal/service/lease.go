package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const (
	entityLease = "lease"

	lookupLimit     = 10
	lookupMinLength = 2
)

// LeaseService manages leases and the tenant autofill lookup.
type LeaseService interface {
	// Create rejects leases that overlap another active lease of the same unit.
	// MonthlyRent defaults to the unit's rent when omitted.
	Create(ctx context.Context, l *model.Lease) (*model.Lease, error)
	Get(ctx context.Context, id string) (*model.Lease, error)
	List(ctx context.Context, f repository.LeaseFilter, p Page) (*ListResult[model.Lease], error)
	// Update edits an active lease; expired and terminated leases are read-only.
	Update(ctx context.Context, id string, l *model.Lease) (*model.Lease, error)
	// Delete frees the unit when the lease was the one occupying it today.
	Delete(ctx context.Context, id string) error
	// Terminate ends an active lease today and frees its unit.
	Terminate(ctx context.Context, id string) (*model.Lease, error)
	// LookupTenant resolves a tenant name or email to the tenant's current
	// lease, unit and building so forms can autofill them.
	LookupTenant(ctx context.Context, query string) ([]model.TenantAutofill, error)
	View(ctx context.Context, id string) (*LeaseView, error)
}

type leaseService struct {
	repo        repository.LeaseRepository
	units       repository.UnitRepository
	buildings   repository.BuildingRepository
	attachments repository.AttachmentRepository
	settings    SettingsService
	events      *events.Emitter
	clock       clock
}

// NewLeaseService constructs a LeaseService.
func NewLeaseService(
	repo repository.LeaseRepository,
	units repository.UnitRepository,
	buildings repository.BuildingRepository,
	attachments repository.AttachmentRepository,
	settings SettingsService,
	em *events.Emitter,
) LeaseService {
	return &leaseService{
		repo:        repo,
		units:       units,
		buildings:   buildings,
		attachments: attachments,
		settings:    settings,
		events:      em,
	}
}

func (s *leaseService) today(ctx context.Context) (model.Date, error) {
	set, err := s.settings.Get(ctx)
	if err != nil {
		return model.Date{}, err
	}
	return s.clock.today(location(set)), nil
}

// validate returns the lease's unit on success.
func (s *leaseService) validate(ctx context.Context, l *model.Lease, excludeID string) (*model.Unit, error) {
	validation.TrimSpace(&l.UnitID, &l.TenantName, &l.TenantPhone, &l.Notes)
	validation.NormalizeEmail(&l.TenantEmail)
	if l.PaymentDay == 0 {
		l.PaymentDay = 1
	}

	errs := validation.Struct(l)
	errs.Merge(validation.DateOrder("end_date", l.StartDate, l.EndDate))
	if errs.Has("unit_id") {
		return nil, errs.Err()
	}

	unit, err := s.units.FindByID(ctx, l.UnitID)
	if err := checkExists(err, "unit_id", "unit does not exist", &errs); err != nil {
		return nil, err
	}
	if unit != nil && l.MonthlyRent == 0 {
		l.MonthlyRent = unit.MonthlyRent
	}
	if l.MonthlyRent <= 0 && !errs.Has("monthly_rent") {
		errs.Add("monthly_rent", "validation_gt", "must be greater than 0")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if l.Status == model.LeaseStatusActive {
		overlap, err := s.repo.HasOverlap(ctx, l.UnitID, l.StartDate, l.EndDate, excludeID)
		if err != nil {
			return nil, err
		}
		if overlap {
			return nil, fmt.Errorf("%w: unit already has an active lease overlapping %s to %s",
				ErrConflict, l.StartDate, l.EndDate)
		}
	}
	return unit, nil
}

func (s *leaseService) Create(ctx context.Context, l *model.Lease) (*model.Lease, error) {
	l.Status = model.LeaseStatusActive
	if _, err := s.validate(ctx, l, ""); err != nil {
		return nil, err
	}
	today, err := s.today(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	l.ID = uuid.NewString()
	l.CreatedAt, l.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, saveErr(entityLease, err)
	}
	if out.Covers(today) {
		if err := s.units.SetStatus(ctx, out.UnitID, model.UnitStatusOccupied); err != nil {
			return nil, fmt.Errorf("mark unit occupied: %w", err)
		}
	}
	s.events.Emit(ctx, entityLease, events.ActionCreated, out.ID)
	return out, nil
}

func (s *leaseService) Get(ctx context.Context, id string) (*model.Lease, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityLease, err)
	}
	return l, nil
}

func (s *leaseService) List(ctx context.Context, f repository.LeaseFilter, p Page) (*ListResult[model.Lease], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

// Update keeps the stored status; use Terminate to end a lease.
func (s *leaseService) Update(ctx context.Context, id string, l *model.Lease) (*model.Lease, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != model.LeaseStatusActive {
		return nil, fmt.Errorf("%w: lease is %s", ErrInvalidTransition, current.Status)
	}
	l.Status = current.Status
	if _, err := s.validate(ctx, l, current.ID); err != nil {
		return nil, err
	}
	l.ID = current.ID
	l.CreatedAt = current.CreatedAt
	l.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, l)
	if err != nil {
		return nil, saveErr(entityLease, err)
	}
	s.events.Emit(ctx, entityLease, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *leaseService) Delete(ctx context.Context, id string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := checkNoAttachments(ctx, s.attachments, model.AttachmentLease, id); err != nil {
		return err
	}
	today, err := s.today(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityLease, err)
	}
	// Overlap checks allow one active lease per unit and day, so this one was the occupant.
	if l.Status == model.LeaseStatusActive && l.Covers(today) {
		if err := s.units.SetStatus(ctx, l.UnitID, model.UnitStatusVacant); err != nil {
			return fmt.Errorf("mark unit vacant: %w", err)
		}
	}
	s.events.Emit(ctx, entityLease, events.ActionDeleted, id)
	return nil
}

func (s *leaseService) Terminate(ctx context.Context, id string) (*model.Lease, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status != model.LeaseStatusActive {
		return nil, fmt.Errorf("%w: lease is %s", ErrInvalidTransition, l.Status)
	}
	today, err := s.today(ctx)
	if err != nil {
		return nil, err
	}

	l.Status = model.LeaseStatusTerminated
	// Cut the term short unless the lease has not started yet.
	if today.After(l.StartDate) && today.Before(l.EndDate) {
		l.EndDate = today
	}
	l.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, l)
	if err != nil {
		return nil, saveErr(entityLease, err)
	}
	if err := s.units.SetStatus(ctx, out.UnitID, model.UnitStatusVacant); err != nil {
		return nil, fmt.Errorf("mark unit vacant: %w", err)
	}
	s.events.Emit(ctx, entityLease, events.ActionTerminated, out.ID)
	return out, nil
}

func (s *leaseService) LookupTenant(ctx context.Context, query string) ([]model.TenantAutofill, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < lookupMinLength {
		var errs validation.Errors
		errs.Add("tenant", "validation_min", fmt.Sprintf("must be at least %d characters", lookupMinLength))
		return nil, errs
	}
	return s.repo.FindCurrentByTenant(ctx, query, lookupLimit)
}

func (s *leaseService) View(ctx context.Context, id string) (*LeaseView, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	v := newLeaseView(display{set: set}, l, s.clock.today(location(set)))

	unit, err := s.units.FindByID(ctx, l.UnitID)
	if err != nil {
		return nil, findErr(entityUnit, err)
	}
	v.UnitNumber = unit.UnitNumber
	if unit.BuildingID != "" {
		b, err := s.buildings.FindByID(ctx, unit.BuildingID)
		if err != nil {
			return nil, findErr(entityBuilding, err)
		}
		v.BuildingName = b.Name
	}
	return v, nil
}
