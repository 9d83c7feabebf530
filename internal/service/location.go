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

const (
	entityCity     = "city"
	entityDistrict = "district"
)

// LocationService manages cities and their districts and serves the
// city -> district dropdown cascade.
type LocationService interface {
	CreateCity(ctx context.Context, c *model.City) (*model.City, error)
	GetCity(ctx context.Context, id string) (*model.City, error)
	ListCities(ctx context.Context, f repository.CityFilter, p Page) (*ListResult[model.City], error)
	UpdateCity(ctx context.Context, id string, c *model.City) (*model.City, error)
	DeleteCity(ctx context.Context, id string) error

	CreateDistrict(ctx context.Context, d *model.District) (*model.District, error)
	GetDistrict(ctx context.Context, id string) (*model.District, error)
	ListDistricts(ctx context.Context, f repository.DistrictFilter, p Page) (*ListResult[model.District], error)
	// DistrictsByCity returns every district of a city, for dependent dropdowns.
	DistrictsByCity(ctx context.Context, cityID string) ([]model.District, error)
	// UpdateDistrict refuses to move a district to another city while buildings
	// or units use it.
	UpdateDistrict(ctx context.Context, id string, d *model.District) (*model.District, error)
	DeleteDistrict(ctx context.Context, id string) error
}

type locationService struct {
	cities    repository.CityRepository
	districts repository.DistrictRepository
	events    *events.Emitter
	clock     clock
}

// NewLocationService constructs a LocationService.
func NewLocationService(cities repository.CityRepository, districts repository.DistrictRepository, em *events.Emitter) LocationService {
	return &locationService{cities: cities, districts: districts, events: em}
}

func (s *locationService) CreateCity(ctx context.Context, c *model.City) (*model.City, error) {
	validation.TrimSpace(&c.Name, &c.Country)
	if err := validation.Struct(c).Err(); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = s.clock.now()
	out, err := s.cities.Create(ctx, c)
	if err != nil {
		return nil, saveErr(entityCity, err)
	}
	s.events.Emit(ctx, entityCity, events.ActionCreated, out.ID)
	return out, nil
}

func (s *locationService) GetCity(ctx context.Context, id string) (*model.City, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.cities.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityCity, err)
	}
	return c, nil
}

func (s *locationService) ListCities(ctx context.Context, f repository.CityFilter, p Page) (*ListResult[model.City], error) {
	res, err := s.cities.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *locationService) UpdateCity(ctx context.Context, id string, c *model.City) (*model.City, error) {
	current, err := s.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}
	validation.TrimSpace(&c.Name, &c.Country)
	if err := validation.Struct(c).Err(); err != nil {
		return nil, err
	}
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	out, err := s.cities.Update(ctx, c)
	if err != nil {
		return nil, saveErr(entityCity, err)
	}
	s.events.Emit(ctx, entityCity, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *locationService) DeleteCity(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.cities.Delete(ctx, id); err != nil {
		return deleteErr(entityCity, err)
	}
	s.events.Emit(ctx, entityCity, events.ActionDeleted, id)
	return nil
}

// checkCity reports a field error when the city does not exist.
func (s *locationService) checkCity(ctx context.Context, cityID string) error {
	var errs validation.Errors
	_, err := s.cities.FindByID(ctx, cityID)
	if err := checkExists(err, "city_id", "city does not exist", &errs); err != nil {
		return err
	}
	return errs.Err()
}

func (s *locationService) CreateDistrict(ctx context.Context, d *model.District) (*model.District, error) {
	validation.TrimSpace(&d.Name, &d.CityID)
	if err := validation.Struct(d).Err(); err != nil {
		return nil, err
	}
	if err := s.checkCity(ctx, d.CityID); err != nil {
		return nil, err
	}
	d.ID = uuid.NewString()
	d.CreatedAt = s.clock.now()
	out, err := s.districts.Create(ctx, d)
	if err != nil {
		return nil, saveErr(entityDistrict, err)
	}
	s.events.Emit(ctx, entityDistrict, events.ActionCreated, out.ID)
	return out, nil
}

func (s *locationService) GetDistrict(ctx context.Context, id string) (*model.District, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.districts.FindByID(ctx, id)
	if err != nil {
		return nil, findErr(entityDistrict, err)
	}
	return d, nil
}

func (s *locationService) ListDistricts(ctx context.Context, f repository.DistrictFilter, p Page) (*ListResult[model.District], error) {
	res, err := s.districts.List(ctx, f, p.query())
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *locationService) DistrictsByCity(ctx context.Context, cityID string) ([]model.District, error) {
	if _, err := s.GetCity(ctx, cityID); err != nil {
		return nil, err
	}
	res, err := s.districts.List(ctx, repository.DistrictFilter{CityID: cityID}, repository.PageQuery{Limit: 1000})
	if err != nil {
		return nil, fmt.Errorf("list districts of %s: %w", cityID, err)
	}
	return res.Items, nil
}

func (s *locationService) UpdateDistrict(ctx context.Context, id string, d *model.District) (*model.District, error) {
	current, err := s.GetDistrict(ctx, id)
	if err != nil {
		return nil, err
	}
	validation.TrimSpace(&d.Name, &d.CityID)
	if err := validation.Struct(d).Err(); err != nil {
		return nil, err
	}
	if d.CityID != current.CityID {
		// Buildings and units store city and district side by side.
		used, err := s.districts.InUse(ctx, current.ID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, fmt.Errorf("%w: district is used by buildings or units and cannot move to another city", ErrConflict)
		}
		if err := s.checkCity(ctx, d.CityID); err != nil {
			return nil, err
		}
	}
	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	out, err := s.districts.Update(ctx, d)
	if err != nil {
		return nil, saveErr(entityDistrict, err)
	}
	s.events.Emit(ctx, entityDistrict, events.ActionUpdated, out.ID)
	return out, nil
}

func (s *locationService) DeleteDistrict(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.districts.Delete(ctx, id); err != nil {
		return deleteErr(entityDistrict, err)
	}
	s.events.Emit(ctx, entityDistrict, events.ActionDeleted, id)
	return nil
}
