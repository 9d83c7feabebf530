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

const entityPayment = "payment"

// PaymentService manages rent and other payments.
type PaymentService interface {
	// Create autofills UnitID, TenantName and Amount from LeaseID when given,
	// and Currency from settings when empty.
	Create(ctx context.Context, p *model.Payment) (*model.Payment, error)
	Get(ctx context.Context, id string) (*model.Payment, error)
	List(ctx context.Context, f repository.PaymentFilter, p Page) (*ListResult[model.Payment], error)
	Update(ctx context.Context, id string, p *model.Payment) (*model.Payment, error)
	Delete(ctx context.Context, id string) error
	// MarkPaid settles a pending or overdue payment.
	MarkPaid(ctx context.Context, id string, in model.PaymentSettlement) (*model.Payment, error)
	View(ctx context.Context, id string) (*PaymentView, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	leases   repository.LeaseRepository
	units    repository.UnitRepository
	settings SettingsService
	events   *events.Emitter
	clock    clock
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(
	repo repository.PaymentRepository,
	leases repository.LeaseRepository,
	units repository.UnitRepository,
	settings SettingsService,
	em *events.Emitter,
) PaymentService {
	return &paymentService{repo: repo, leases: leases, units: units, settings: settings, events: em}
}

func (s *paymentService) validate(ctx context.Context, p *model.Payment) error {
	validation.TrimSpace(&p.LeaseID, &p.UnitID, &p.TenantName, &p.Reference)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.BuildingID = ""

	var errs validation.Errors
	if p.LeaseID != "" && uuid.Validate(p.LeaseID) != nil {
		errs.Add("lease_id", "validation_uuid", "must be a valid id")
	} else if p.LeaseID != "" {
		lease, err := s.leases.FindByID(ctx, p.LeaseID)
		if err := checkExists(err, "lease_id", "lease does not exist", &errs); err != nil {
			return err
		}
		if lease != nil {
			if p.UnitID == "" {
				p.UnitID = lease.UnitID
			} else if p.UnitID != lease.UnitID {
				errs.Add("unit_id", "lease_mismatch", "unit does not match the lease's unit")
			}
			if p.TenantName == "" {
				p.TenantName = lease.TenantName
			} else if p.TenantName != lease.TenantName {
				errs.Add("tenant_name", "lease_mismatch", "tenant does not match the lease's tenant")
			}
			if p.Amount == 0 {
				p.Amount = lease.MonthlyRent
			}
		}
	}
	if p.Currency == "" {
		set, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		p.Currency = set.Currency
	}
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
		if !p.PaidDate.IsZero() {
			p.Status = model.PaymentStatusPaid
		}
	}

	for _, fe := range validation.Struct(p) {
		if !errs.Has(fe.Field) {
			errs = append(errs, fe)
		}
	}
	if p.UnitID == "" && !errs.Has("lease_id") {
		errs.Add("unit_id", "validation_required", "is required")
	}
	if p.Status == model.PaymentStatusPaid && p.PaidDate.IsZero() {
		errs.Add("paid_date", "validation_required", "is required when the payment is paid")
	}
	if p.Status != model.PaymentStatusPaid && !p.PaidDate.IsZero() {
		errs.Add("paid_date", "paid_date_unexpected", "must be empty unless the payment is paid")
	}
	if p.UnitID != "" && !errs.Has("unit_id") {
		_, err := s.units.FindByID(ctx, p.UnitID)
		if err := checkExists(err, "unit_id", "unit does not exist", &errs); err != nil {
			return err
		}
	}
	return errs.Err()
}

func (s *paymentService) Create(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	now := s.clock.now()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, saveErr(entityPayment, err)
	}
	s.events.Emit(ctx, entityPayment, events.ActionCreated, out.ID)
	return out, nil
}

func (s *paymentService) Get(ctx context.Context, id string) (*model.Payment, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityPayment, err)
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context, f repository.PaymentFilter, p Page) (*ListResult[model.Payment], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *paymentService) Update(ctx context.Context, id string, p *model.Payment) (*model.Payment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, saveErr(entityPayment, err)
	}
	s.events.Emit(ctx, entityPayment, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *paymentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityPayment, err)
	}
	s.events.Emit(ctx, entityPayment, events.ActionDeleted, id)
	return nil
}

func (s *paymentService) MarkPaid(ctx context.Context, id string, in model.PaymentSettlement) (*model.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.PaymentStatusPending && p.Status != model.PaymentStatusOverdue {
		return nil, fmt.Errorf("%w: payment is %s", ErrInvalidTransition, p.Status)
	}
	validation.TrimSpace(&in.Reference)
	if err := validation.Struct(in).Err(); err != nil {
		return nil, err
	}
	if in.PaidDate.IsZero() {
		set, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		in.PaidDate = s.clock.today(location(set))
	}

	p.Status = model.PaymentStatusPaid
	p.PaidDate = in.PaidDate
	p.Method = in.Method
	if in.Reference != "" {
		p.Reference = in.Reference
	}
	p.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, saveErr(entityPayment, err)
	}
	s.events.Emit(ctx, entityPayment, events.ActionPaid, out.ID)
	return out, nil
}

func (s *paymentService) View(ctx context.Context, id string) (*PaymentView, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return newPaymentView(display{set: set}, p), nil
}
