package helper

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const (
	MsgInvalidData   = "invalid data"
	MsgInternalError = "internal error"
	MsgRouteNotFound = "route not found"
)

// ValidationError carries field-level problems found before any write.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, fields map[string][]string) *ValidationError {
	if message == "" {
		message = MsgInvalidData
	}
	return &ValidationError{Message: message, Fields: fields}
}

// FieldError is a ValidationError about a single field.
func FieldError(field, problem string) *ValidationError {
	return NewValidationError(MsgInvalidData, map[string][]string{field: {problem}})
}

// Domain errors are plain *fiber.Error values so handlers can return them as is.
func NotFound(message string) error { return fiber.NewError(fiber.StatusNotFound, message) }
func Conflict(message string) error { return fiber.NewError(fiber.StatusConflict, message) }

// Rejected is a business rule refusing the request (not a server failure).
func Rejected(message string) error { return fiber.NewError(fiber.StatusBadRequest, message) }

// ErrorHandler is the app-wide fiber.Config.ErrorHandler. Anything that is not
// a ValidationError or a client-side *fiber.Error is logged and hidden.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		if fe.Code == fiber.StatusNotFound && fe.Message == fiber.ErrNotFound.Message {
			return JsonError(c, fiber.StatusNotFound, MsgRouteNotFound)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	slog.ErrorContext(c.UserContext(), "unhandled error",
		"request_id", RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return JsonError(c, fiber.StatusInternalServerError, MsgInternalError)
}

// RouteNotFound is mounted after every route.
func RouteNotFound(c *fiber.Ctx) error {
	return JsonError(c, fiber.StatusNotFound, MsgRouteNotFound)
}

// LocalsRequestID is the c.Locals key set by the request id middleware.
const LocalsRequestID = "reqid"

func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsRequestID).(string); ok {
		return v
	}
	return ""
}
