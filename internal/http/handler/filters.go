package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/repository"
)

func ownerFilter(c *fiber.Ctx) (repository.OwnerFilter, bool, error) {
	return repository.OwnerFilter{Query: strings.TrimSpace(c.Query("q"))}, true, nil
}

func buildingFilter(c *fiber.Ctx) (repository.BuildingFilter, bool, error) {
	f := repository.BuildingFilter{Query: strings.TrimSpace(c.Query("q"))}
	var ok bool
	var err error
	if f.CityID, ok, err = queryID(c, "city_id"); !ok {
		return f, false, err
	}
	if f.DistrictID, ok, err = queryID(c, "district_id"); !ok {
		return f, false, err
	}
	if f.OwnerID, ok, err = queryID(c, "owner_id"); !ok {
		return f, false, err
	}
	return f, true, nil
}

func unitFilter(c *fiber.Ctx) (repository.UnitFilter, bool, error) {
	f := repository.UnitFilter{Status: c.Query("status"), Type: c.Query("type")}
	var ok bool
	var err error
	if f.BuildingID, ok, err = queryID(c, "building_id"); !ok {
		return f, false, err
	}
	if f.CityID, ok, err = queryID(c, "city_id"); !ok {
		return f, false, err
	}
	if f.DistrictID, ok, err = queryID(c, "district_id"); !ok {
		return f, false, err
	}
	if f.OwnerID, ok, err = queryID(c, "owner_id"); !ok {
		return f, false, err
	}
	return f, true, nil
}

func leaseFilter(c *fiber.Ctx) (repository.LeaseFilter, bool, error) {
	f := repository.LeaseFilter{Status: c.Query("status"), Tenant: strings.TrimSpace(c.Query("q"))}
	var ok bool
	var err error
	if f.UnitID, ok, err = queryID(c, "unit_id"); !ok {
		return f, false, err
	}
	return f, true, nil
}

func paymentFilter(c *fiber.Ctx) (repository.PaymentFilter, bool, error) {
	f := repository.PaymentFilter{Status: c.Query("status")}
	var ok bool
	var err error
	if f.UnitID, ok, err = queryID(c, "unit_id"); !ok {
		return f, false, err
	}
	if f.LeaseID, ok, err = queryID(c, "lease_id"); !ok {
		return f, false, err
	}
	if f.DueFrom, ok, err = queryDate(c, "due_from"); !ok {
		return f, false, err
	}
	if f.DueTo, ok, err = queryDate(c, "due_to"); !ok {
		return f, false, err
	}
	return f, true, nil
}

func stockFilter(c *fiber.Ctx) (repository.StockFilter, bool, error) {
	f := repository.StockFilter{Category: c.Query("category"), Query: strings.TrimSpace(c.Query("q"))}
	if v := c.Query("low_stock"); v != "" {
		low, err := strconv.ParseBool(v)
		if err != nil {
			return f, false, writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid low_stock")
		}
		f.LowStock = low
	}
	return f, true, nil
}

func serviceRequestFilter(c *fiber.Ctx) (repository.ServiceRequestFilter, bool, error) {
	f := repository.ServiceRequestFilter{
		Kind:     c.Query("kind"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	var ok bool
	var err error
	if f.UnitID, ok, err = queryID(c, "unit_id"); !ok {
		return f, false, err
	}
	return f, true, nil
}

func cityFilter(c *fiber.Ctx) (repository.CityFilter, bool, error) {
	return repository.CityFilter{Query: strings.TrimSpace(c.Query("q"))}, true, nil
}

func districtFilter(c *fiber.Ctx) (repository.DistrictFilter, bool, error) {
	f := repository.DistrictFilter{Query: strings.TrimSpace(c.Query("q"))}
	var ok bool
	var err error
	if f.CityID, ok, err = queryID(c, "city_id"); !ok {
		return f, false, err
	}
	return f, true, nil
}
