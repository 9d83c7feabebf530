package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/http/middleware"
	"propdesk/internal/service"
	"propdesk/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeValidation writes a 422 whose details list every failed field.
func writeValidation(c *fiber.Ctx, errs validation.Errors) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "validation failed",
			Details: errs,
		},
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
}

// serviceError translates a service error into the matching response.
// Messages of sentinel-wrapped errors are safe to show; anything else is a 500.
func serviceError(c *fiber.Ctx, err error) error {
	if errs, ok := validation.As(err); ok {
		return writeValidation(c, errs)
	}
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, service.ErrInsufficientStock):
		return writeError(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return writeError(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	case errors.Is(err, service.ErrStorageDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "attachments are disabled")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
