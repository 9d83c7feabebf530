package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"propdesk/internal/model"
	"propdesk/internal/service"
)

// pathID reads :id and reports whether it is a well-formed uuid.
// On failure the 400 response has already been written.
func pathID(c *fiber.Ctx) (string, bool, error) {
	id := c.Params("id")
	if err := uuid.Validate(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// page reads limit and offset. Service.Page clamps the values.
func page(c *fiber.Ctx) (service.Page, bool, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return service.Page{}, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return service.Page{}, false, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return service.Page{Limit: limit, Offset: offset}, true, nil
}

// queryID reads an optional uuid filter such as city_id.
func queryID(c *fiber.Ctx, key string) (string, bool, error) {
	v := c.Query(key)
	if v == "" {
		return "", true, nil
	}
	if err := uuid.Validate(v); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid "+key)
	}
	return v, true, nil
}

// queryDate reads an optional YYYY-MM-DD filter.
func queryDate(c *fiber.Ctx, key string) (model.Date, bool, error) {
	v := c.Query(key)
	if v == "" {
		return model.Date{}, true, nil
	}
	d, err := model.ParseDate(v)
	if err != nil {
		return model.Date{}, false, writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid "+key)
	}
	return d, true, nil
}

// body decodes the JSON request body into v.
func body(c *fiber.Ctx, v any) (bool, error) {
	if err := c.BodyParser(v); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	return true, nil
}
