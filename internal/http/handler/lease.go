package handler

import (
	"github.com/gofiber/fiber/v2"

	"propdesk/internal/service"
)

// LookupTenant resolves a tenant to their current unit and building.
// @Summary Tenant autofill
// @Tags leases
// @Produce json
// @Param tenant query string true "Tenant name or email, at least 2 characters"
// @Success 200 {object} map[string][]model.TenantAutofill
// @Failure 422 {object} errorPayload
// @Router /leases/lookup [get]
func LookupTenant(svc service.LeaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.LookupTenant(c.UserContext(), c.Query("tenant"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": out})
	}
}

// TerminateLease ends an active lease and frees its unit.
// @Summary Terminate lease
// @Tags leases
// @Produce json
// @Param id path string true "Lease ID"
// @Success 200 {object} model.Lease
// @Failure 409 {object} errorPayload
// @Router /leases/{id}/terminate [post]
func TerminateLease(svc service.LeaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		out, err := svc.Terminate(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}
