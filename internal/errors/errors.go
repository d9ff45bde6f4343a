package errors

import (
	"fmt"
	"net/http"
)

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	if e.Message == "" {
		return "Access denied"
	}
	return e.Message
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// PartiallyAppliedError reports a multi-write operation where one write
// landed and another did not. The reference in-memory store never produces
// it; collaborators without a single transactional boundary must, so the
// caller can reconcile instead of trusting a half-applied state.
type PartiallyAppliedError struct {
	Message string
}

func (e *PartiallyAppliedError) Error() string {
	return fmt.Sprintf("Partially applied: %s", e.Message)
}

// StatusCode maps the error taxonomy to the stable status class the
// boundary layer serializes. Unknown errors are internal.
func StatusCode(err error) int {
	switch {
	case Is[*NotFoundError](err):
		return http.StatusNotFound
	case Is[*AccessDeniedError](err):
		return http.StatusForbidden
	case Is[*ConflictError](err):
		return http.StatusConflict
	case Is[*ValidationError](err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
