package handler

import (
	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/service"
)

// MarkPaymentPaid settles a pending or overdue payment.
// @Summary Mark payment paid
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body model.PaymentSettlement true "Settlement"
// @Success 200 {object} model.Payment
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /payments/{id}/pay [post]
func MarkPaymentPaid(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		var in model.PaymentSettlement
		if ok, err := body(c, &in); !ok {
			return err
		}
		out, err := svc.MarkPaid(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}
