package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storeapi/internal/http/middleware"
	"storeapi/internal/repository"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

const (
	codeValidation   = "VALIDATION_ERROR"
	codeNotFound     = "NOT_FOUND"
	codeConstraint   = "CONSTRAINT_VIOLATION"
	codeUnavailable  = "SERVICE_UNAVAILABLE"
	codeInternal     = "INTERNAL_ERROR"
	msgInternal      = "internal server error"
	msgUnavailable   = "dependency unavailable"
	msgInvalidInput  = "invalid input"
	msgReferenced    = "record is still referenced by other records"
	msgMissingTarget = "referenced record does not exist"
	msgDate          = "must be a date in YYYY-MM-DD form"
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "NOT_FOUND", "CONSTRAINT_VIOLATION")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details map[string]string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

func writeValidationError(c *fiber.Ctx, details map[string]string) error {
	return writeErrorDetails(c, fiber.StatusUnprocessableEntity, codeValidation, msgInvalidInput, details)
}

func writeNotFound(c *fiber.Ctx, res Resource) error {
	return writeError(c, fiber.StatusNotFound, codeNotFound, res.Label+" not found")
}

// writeStorageError maps a repository failure onto the response. deleting
// selects the message used when a foreign key rule rejects the write.
func writeStorageError(c *fiber.Ctx, err error, res Resource, deleting bool) error {
	var ce *repository.ConstraintError
	switch {
	case errors.As(err, &ce):
		return writeError(c, fiber.StatusBadRequest, codeConstraint, res.constraintMessage(ce, deleting))
	case errors.Is(err, repository.ErrConstraintViolation):
		return writeError(c, fiber.StatusBadRequest, codeConstraint, "constraint violation")
	case errors.Is(err, repository.ErrStorageUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, codeUnavailable, msgUnavailable)
	default:
		return writeError(c, fiber.StatusInternalServerError, codeInternal, msgInternal)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, codeNotFound, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusUnprocessableEntity:
			return writeError(c, status, codeValidation, msgInvalidInput)
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, codeInternal, msgInternal)
		}
	}
}
