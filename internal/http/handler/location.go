package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

// cities and districts expose LocationService through the generic CRUD handlers.
type cities struct{ service.LocationService }

func (s cities) Create(ctx context.Context, c *model.City) (*model.City, error) {
	return s.CreateCity(ctx, c)
}

func (s cities) Get(ctx context.Context, id string) (*model.City, error) {
	return s.GetCity(ctx, id)
}

func (s cities) List(ctx context.Context, f repository.CityFilter, p service.Page) (*service.ListResult[model.City], error) {
	return s.ListCities(ctx, f, p)
}

func (s cities) Update(ctx context.Context, id string, c *model.City) (*model.City, error) {
	return s.UpdateCity(ctx, id, c)
}

func (s cities) Delete(ctx context.Context, id string) error {
	return s.DeleteCity(ctx, id)
}

type districts struct{ service.LocationService }

func (s districts) Create(ctx context.Context, d *model.District) (*model.District, error) {
	return s.CreateDistrict(ctx, d)
}

func (s districts) Get(ctx context.Context, id string) (*model.District, error) {
	return s.GetDistrict(ctx, id)
}

func (s districts) List(ctx context.Context, f repository.DistrictFilter, p service.Page) (*service.ListResult[model.District], error) {
	return s.ListDistricts(ctx, f, p)
}

func (s districts) Update(ctx context.Context, id string, d *model.District) (*model.District, error) {
	return s.UpdateDistrict(ctx, id, d)
}

func (s districts) Delete(ctx context.Context, id string) error {
	return s.DeleteDistrict(ctx, id)
}

// CityDistricts serves the city -> district dropdown cascade.
// @Summary Districts of a city
// @Tags locations
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} map[string][]model.District
// @Failure 404 {object} errorPayload
// @Router /cities/{id}/districts [get]
func CityDistricts(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := svc.DistrictsByCity(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": out})
	}
}
