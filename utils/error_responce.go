package utils

import "github.com/gofiber/fiber/v2"

// Stable machine-checkable error kinds carried in the "error" field of every
// failure response.
const (
	ErrValidation         = "validation_error"
	ErrUnauthenticated    = "unauthenticated"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not_found"
	ErrInvalidTransition  = "invalid_transition"
	ErrServiceUnavailable = "service_unavailable"
	ErrConflict           = "conflict"
	ErrStorage            = "storage_error"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// Fail writes a failure response with the given HTTP status and error kind.
func Fail(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Kind:    kind,
		Message: message,
	})
}
