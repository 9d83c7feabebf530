package handler

import (
	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/service"
)

// GetSettings returns the settings record, or defaults before the first save.
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} model.Settings
// @Router /settings [get]
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Get(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}

// UpdateSettings replaces the settings record.
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param body body model.Settings true "Settings"
// @Success 200 {object} model.Settings
// @Failure 422 {object} errorPayload
// @Router /settings [put]
func UpdateSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Settings
		if ok, err := body(c, &in); !ok {
			return err
		}
		out, err := svc.Update(c.UserContext(), &in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(out)
	}
}
