package core

import (
	"errors"
	"fmt"

	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest  = 400
	ErrorCodeForbidden   = 403
	ErrorCodeNotFound    = 404
	ErrorCodeConflict    = 409
	ErrorCodeInternal    = 500
	ErrorCodeUnavailable = 503
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError hides err behind a generic message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: "Something went wrong. Please try again later.",
		ShowToUser:  true,
		Code:        ErrorCodeInternal,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: fmt.Sprintf("%s not found", resource),
		ShowToUser:  true,
		Code:        ErrorCodeNotFound,
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeForbidden,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeBadRequest,
	}
}

// FromError converts a service error into a HandlerError. Application
// errors the player can act on keep their innermost message; everything
// else is hidden behind the internal error text.
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		return NewHandlerError(err, apperr.Root(err), ErrorCodeNotFound)
	case apperr.CodeInvalidArgument, apperr.CodeValidation:
		return NewHandlerError(err, apperr.Root(err), ErrorCodeBadRequest)
	case apperr.CodePermissionDenied:
		return NewHandlerError(err, apperr.Root(err), ErrorCodeForbidden)
	case apperr.CodeFailedPrecondition, apperr.CodeAlreadyExists:
		return NewHandlerError(err, apperr.Root(err), ErrorCodeConflict)
	case apperr.CodeUnavailable:
		return NewHandlerError(err, "The game store is unavailable right now. Please try again.", ErrorCodeUnavailable)
	default:
		return NewInternalError(err)
	}
}
