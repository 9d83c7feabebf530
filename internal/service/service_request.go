package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const entityServiceRequest = "service_request"

// ServiceRequestService manages cleaning and maintenance requests.
type ServiceRequestService interface {
	Create(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error)
	Get(ctx context.Context, id string) (*model.ServiceRequest, error)
	List(ctx context.Context, f repository.ServiceRequestFilter, p Page) (*ListResult[model.ServiceRequest], error)
	// Update edits details only; the status moves through ChangeStatus.
	Update(ctx context.Context, id string, r *model.ServiceRequest) (*model.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	// ChangeStatus applies open -> in_progress -> completed, or cancels a
	// request that is not finished yet.
	ChangeStatus(ctx context.Context, id string, next model.RequestStatus) (*model.ServiceRequest, error)
	View(ctx context.Context, id string) (*ServiceRequestView, error)
}

type serviceRequestService struct {
	repo        repository.ServiceRequestRepository
	units       repository.UnitRepository
	attachments repository.AttachmentRepository
	settings    SettingsService
	events      *events.Emitter
	clock       clock
}

// NewServiceRequestService constructs a ServiceRequestService.
func NewServiceRequestService(
	repo repository.ServiceRequestRepository,
	units repository.UnitRepository,
	attachments repository.AttachmentRepository,
	settings SettingsService,
	em *events.Emitter,
) ServiceRequestService {
	return &serviceRequestService{repo: repo, units: units, attachments: attachments, settings: settings, events: em}
}

func (s *serviceRequestService) validate(ctx context.Context, r *model.ServiceRequest) error {
	validation.TrimSpace(&r.UnitID, &r.Title, &r.Description, &r.AssignedTo)
	if r.Priority == "" {
		r.Priority = "medium"
	}
	errs := validation.Struct(r)
	if errs.Has("unit_id") {
		return errs.Err()
	}
	_, err := s.units.FindByID(ctx, r.UnitID)
	if err := checkExists(err, "unit_id", "unit does not exist", &errs); err != nil {
		return err
	}
	return errs.Err()
}

func (s *serviceRequestService) Create(ctx context.Context, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	if err := s.validate(ctx, r); err != nil {
		return nil, err
	}
	now := s.clock.now()
	r.ID = uuid.NewString()
	r.Status = model.RequestStatusOpen
	r.CompletedAt = nil
	r.CreatedAt, r.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, saveErr(entityServiceRequest, err)
	}
	s.events.Emit(ctx, entityServiceRequest, events.ActionCreated, out.ID)
	return out, nil
}

func (s *serviceRequestService) Get(ctx context.Context, id string) (*model.ServiceRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityServiceRequest, err)
	}
	return r, nil
}

func (s *serviceRequestService) List(ctx context.Context, f repository.ServiceRequestFilter, p Page) (*ListResult[model.ServiceRequest], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *serviceRequestService) Update(ctx context.Context, id string, r *model.ServiceRequest) (*model.ServiceRequest, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: request is %s", ErrInvalidTransition, current.Status)
	}
	if err := s.validate(ctx, r); err != nil {
		return nil, err
	}
	r.ID = current.ID
	r.Status = current.Status
	r.CompletedAt = current.CompletedAt
	r.CreatedAt = current.CreatedAt
	r.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, r)
	if err != nil {
		return nil, saveErr(entityServiceRequest, err)
	}
	s.events.Emit(ctx, entityServiceRequest, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *serviceRequestService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := checkNoAttachments(ctx, s.attachments, model.AttachmentServiceRequest, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityServiceRequest, err)
	}
	s.events.Emit(ctx, entityServiceRequest, events.ActionDeleted, id)
	return nil
}

func (s *serviceRequestService) ChangeStatus(ctx context.Context, id string, next model.RequestStatus) (*model.ServiceRequest, error) {
	if err := validation.Struct(model.StatusChange{Status: next}).Err(); err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, next)
	}

	now := s.clock.now()
	r.Status = next
	if next == model.RequestStatusCompleted {
		r.CompletedAt = &now
	}
	r.UpdatedAt = now
	out, err := s.repo.Update(ctx, r)
	if err != nil {
		return nil, saveErr(entityServiceRequest, err)
	}
	s.events.Emit(ctx, entityServiceRequest, events.ActionStatusChanged, out.ID)
	return out, nil
}

func (s *serviceRequestService) View(ctx context.Context, id string) (*ServiceRequestView, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	v := newServiceRequestView(display{set: set}, r)
	if u, err := s.units.FindByID(ctx, r.UnitID); err == nil {
		v.UnitNumber = u.UnitNumber
	}
	return v, nil
}
