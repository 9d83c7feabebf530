package service

import (
	"context"

	"github.com/google/uuid"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const entityOwner = "owner"

// OwnerService manages owners.
type OwnerService interface {
	Create(ctx context.Context, o *model.Owner) (*model.Owner, error)
	Get(ctx context.Context, id string) (*model.Owner, error)
	List(ctx context.Context, f repository.OwnerFilter, p Page) (*ListResult[model.Owner], error)
	Update(ctx context.Context, id string, o *model.Owner) (*model.Owner, error)
	// Delete fails with ErrConflict while the owner still holds a building share or a unit.
	Delete(ctx context.Context, id string) error
}

type ownerService struct {
	repo   repository.OwnerRepository
	events *events.Emitter
	clock  clock
}

// NewOwnerService constructs an OwnerService.
func NewOwnerService(repo repository.OwnerRepository, em *events.Emitter) OwnerService {
	return &ownerService{repo: repo, events: em}
}

func sanitizeOwner(o *model.Owner) {
	validation.TrimSpace(&o.FullName, &o.Phone, &o.NationalID, &o.Notes)
	validation.NormalizeEmail(&o.Email)
}

func (s *ownerService) Create(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	sanitizeOwner(o)
	if err := validation.Struct(o).Err(); err != nil {
		return nil, err
	}
	now := s.clock.now()
	o.ID = uuid.NewString()
	o.CreatedAt, o.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, saveErr(entityOwner, err)
	}
	s.events.Emit(ctx, entityOwner, events.ActionCreated, out.ID)
	return out, nil
}

func (s *ownerService) Get(ctx context.Context, id string) (*model.Owner, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityOwner, err)
	}
	return o, nil
}

func (s *ownerService) List(ctx context.Context, f repository.OwnerFilter, p Page) (*ListResult[model.Owner], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *ownerService) Update(ctx context.Context, id string, o *model.Owner) (*model.Owner, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitizeOwner(o)
	if err := validation.Struct(o).Err(); err != nil {
		return nil, err
	}
	o.ID = current.ID
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, o)
	if err != nil {
		return nil, saveErr(entityOwner, err)
	}
	s.events.Emit(ctx, entityOwner, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *ownerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityOwner, err)
	}
	s.events.Emit(ctx, entityOwner, events.ActionDeleted, id)
	return nil
}
