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

const entityBuilding = "building"

// BuildingService manages buildings and their ownership shares.
type BuildingService interface {
	// Create rejects the building unless its owners exist and their shares total 100%.
	Create(ctx context.Context, b *model.Building) (*model.Building, error)
	Get(ctx context.Context, id string) (*model.Building, error)
	List(ctx context.Context, f repository.BuildingFilter, p Page) (*ListResult[model.Building], error)
	Update(ctx context.Context, id string, b *model.Building) (*model.Building, error)
	Delete(ctx context.Context, id string) error
}

type buildingService struct {
	repo      repository.BuildingRepository
	owners    repository.OwnerRepository
	cities    repository.CityRepository
	districts repository.DistrictRepository
	events    *events.Emitter
	clock     clock
}

// NewBuildingService constructs a BuildingService.
func NewBuildingService(
	repo repository.BuildingRepository,
	owners repository.OwnerRepository,
	cities repository.CityRepository,
	districts repository.DistrictRepository,
	em *events.Emitter,
) BuildingService {
	return &buildingService{repo: repo, owners: owners, cities: cities, districts: districts, events: em}
}

// validate runs tag rules, the ownership total and every reference check,
// so the caller gets the full error map in one response.
func (s *buildingService) validate(ctx context.Context, b *model.Building) error {
	validation.TrimSpace(&b.Name, &b.Address, &b.CityID, &b.DistrictID)
	for i := range b.Owners {
		validation.TrimSpace(&b.Owners[i].OwnerID)
		b.Owners[i].OwnerName = ""
	}

	errs := validation.Struct(b)
	errs.Merge(validation.OwnershipTotal("owners", b.Owners))
	if errs.Has("city_id") || errs.Has("district_id") {
		return errs.Err()
	}
	if err := checkLocation(ctx, s.cities, s.districts, b.CityID, b.DistrictID, &errs); err != nil {
		return err
	}
	if err := s.checkOwners(ctx, b, &errs); err != nil {
		return err
	}
	return errs.Err()
}

// checkOwners flags unknown owner ids and fills OwnerName for the known ones.
func (s *buildingService) checkOwners(ctx context.Context, b *model.Building, errs *validation.Errors) error {
	ids := make([]string, 0, len(b.Owners))
	skip := make(map[int]bool)
	for i, o := range b.Owners {
		if o.OwnerID == "" || errs.Has(fmt.Sprintf("owners[%d].owner_id", i)) {
			skip[i] = true
			continue
		}
		ids = append(ids, o.OwnerID)
	}
	if len(ids) == 0 {
		return nil
	}
	found, err := s.owners.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(found))
	for _, o := range found {
		names[o.ID] = o.FullName
	}
	for i, o := range b.Owners {
		if skip[i] {
			continue
		}
		name, ok := names[o.OwnerID]
		if !ok {
			errs.Add(fmt.Sprintf("owners[%d].owner_id", i), "not_found", "owner does not exist")
			continue
		}
		b.Owners[i].OwnerName = name
	}
	return nil
}

func (s *buildingService) Create(ctx context.Context, b *model.Building) (*model.Building, error) {
	if err := s.validate(ctx, b); err != nil {
		return nil, err
	}
	now := s.clock.now()
	b.ID = uuid.NewString()
	b.CreatedAt, b.UpdatedAt = now, now
	out, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, saveErr(entityBuilding, err)
	}
	s.events.Emit(ctx, entityBuilding, events.ActionCreated, out.ID)
	return out, nil
}

func (s *buildingService) Get(ctx context.Context, id string) (*model.Building, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityBuilding, err)
	}
	return b, nil
}

func (s *buildingService) List(ctx context.Context, f repository.BuildingFilter, p Page) (*ListResult[model.Building], error) {
	res, err := s.repo.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *buildingService) Update(ctx context.Context, id string, b *model.Building) (*model.Building, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, b); err != nil {
		return nil, err
	}
	b.ID = current.ID
	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = s.clock.now()
	out, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, saveErr(entityBuilding, err)
	}
	s.events.Emit(ctx, entityBuilding, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *buildingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(entityBuilding, err)
	}
	s.events.Emit(ctx, entityBuilding, events.ActionDeleted, id)
	return nil
}
