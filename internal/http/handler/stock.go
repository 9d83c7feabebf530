package handler

import (
	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/service"
)

// AdjustStock adds or removes quantity.
// @Summary Adjust stock
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param body body model.StockAdjustment true "Adjustment"
// @Success 200 {object} model.StockItem
// @Failure 409 {object} errorPayload
// @Router /stock/{id}/adjust [post]
func AdjustStock(svc service.StockService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		var in model.StockAdjustment
		if ok, err := body(c, &in); !ok {
			return err
		}
		out, err := svc.Adjust(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}
