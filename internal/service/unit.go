package service

import (
	"context"

	"github.com/google/uuid"

	"propdesk/internal/events"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

const entityUnit = "unit"

// UnitService manages rentable units.
type UnitService interface {
	// Create fills CityID and DistrictID from the building when the unit belongs to one.
	Create(ctx context.Context, u *model.Unit) (*model.Unit, error)
	Get(ctx context.Context, id string) (*model.Unit, error)
	List(ctx context.Context, f repository.UnitFilter, p Page) (*ListResult[model.Unit], error)
	Update(ctx context.Context, id string, u *model.Unit) (*model.Unit, error)
	Delete(ctx context.Context, id string) error
}

type unitService struct {
	repo        repository.UnitRepository
	buildings   repository.BuildingRepository
	owners      repository.OwnerRepository
	cities      repository.CityRepository
	districts   repository.DistrictRepository
	attachments repository.AttachmentRepository
	events      *events.Emitter
	clock       clock
}

// NewUnitService constructs a UnitService.
func NewUnitService(
	repo repository.UnitRepository,
	buildings repository.BuildingRepository,
	owners repository.OwnerRepository,
	cities repository.CityRepository,
	districts repository.DistrictRepository,
	attachments repository.AttachmentRepository,
	em *events.Emitter,
) UnitService {
	return &unitService{
		repo:        repo,
		buildings:   buildings,
		owners:      owners,
		cities:      cities,
		districts:   districts,
		attachments: attachments,
		events:      em,
	}
}

func (s *unitService) validate(ctx context.Context, u *model.Unit) error {
	validation.TrimSpace(&u.UnitNumber, &u.BuildingID, &u.CityID, &u.DistrictID, &u.OwnerID)
	if u.Status == "" {
		u.Status = model.UnitStatusVacant
	}

	errs := validation.Struct(u)
	if errs.Has("building_id") || errs.Has("owner_id") || errs.Has("city_id") || errs.Has("district_id") {
		return errs.Err()
	}

	if u.BuildingID != "" {
		b, err := s.buildings.FindByID(ctx, u.BuildingID)
		if err := checkExists(err, "building_id", "building does not exist", &errs); err != nil {
			return err
		}
		if b != nil {
			// A unit inside a building shares its location.
			if u.CityID == "" {
				u.CityID = b.CityID
			}
			if u.DistrictID == "" {
				u.DistrictID = b.DistrictID
			}
			if u.CityID != b.CityID {
				errs.Add("city_id", "building_mismatch", "city must match the building's city")
			}
			if u.DistrictID != b.DistrictID {
				errs.Add("district_id", "building_mismatch", "district must match the building's district")
			}
		}
	} else if u.CityID == "" {
		errs.Add("city_id", "validation_required", "is required when the unit is not in a building")
	}

	if !errs.Has("city_id") && !errs.Has("district_id") {
		if err := checkLocation(ctx, s.cities, s.districts, u.CityID, u.DistrictID, &errs); err != nil {
			return err
		}
	}

	_, err := s.owners.FindByID(ctx, u.OwnerID)
	if err := checkExists(err, "owner_id", "owner does not exist", &errs); err != nil {
		return err
	}
	return errs.Err()
}

func (s *unitService) Create(ctx context.Context, u *model.Unit) (*model.Unit, error) {
	if err := s.validate(ctx, u); err != nil {
		return nil, err
	}
	now := s.clock.now()
	u.ID = uuid.NewString()
	u.CreatedAt, u.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, saveErr(entityUnit, err)
	}
	s.events.Emit(ctx, entityUnit, events.ActionCreated, out.ID)
	return out, nil
}

func (s *unitService) Get(ctx context.Context, id string) (*model.Unit, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityUnit, err)
	}
	return u, nil
}

func (s *unitService) List(ctx context.Context, f repository.UnitFilter, p Page) (*ListResult[model.Unit], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *unitService) Update(ctx context.Context, id string, u *model.Unit) (*model.Unit, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status == "" {
		u.Status = current.Status
	}
	if err := s.validate(ctx, u); err != nil {
		return nil, err
	}
	u.ID = current.ID
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, saveErr(entityUnit, err)
	}
	s.events.Emit(ctx, entityUnit, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *unitService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := checkNoAttachments(ctx, s.attachments, model.AttachmentUnit, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityUnit, err)
	}
	s.events.Emit(ctx, entityUnit, events.ActionDeleted, id)
	return nil
}
