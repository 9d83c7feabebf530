package handler

import (
	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/service"
)

// ChangeRequestStatus moves a cleaning or maintenance request along its lifecycle.
// @Summary Change request status
// @Tags service-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body model.StatusChange true "Next status"
// @Success 200 {object} model.ServiceRequest
// @Failure 409 {object} errorPayload
// @Router /service-requests/{id}/status [post]
func ChangeRequestStatus(svc service.ServiceRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		var in model.StatusChange
		if ok, err := body(c, &in); !ok {
			return err
		}
		out, err := svc.ChangeStatus(c.UserContext(), id, in.Status)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}
