// apperr/apperr.go
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is an error with an HTTP status and a message that is safe to
// return to the client. Message strings are part of the API contract.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func NotFound() *Error {
	return New(fiber.StatusNotFound, "Not Found")
}

// StatusOf reports the status an error will be rendered with.
// Untyped errors are internal.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
