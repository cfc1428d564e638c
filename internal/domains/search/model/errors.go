package model

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrUpstreamUnavailable - a catalog could not be reached or answered with a failure
	ErrUpstreamUnavailable = errors.New("catalog service unavailable")
	// ErrNotFound - single record lookup found nothing
	ErrNotFound = errors.New("record not found")
)

// ValidationError - a required request parameter is missing
type ValidationError struct {
	Param   string
	Message string
}

func NewValidationError(param, message string) *ValidationError {
	return &ValidationError{Param: param, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ToHTTPStatus converts an error of the search flow to an HTTP status code
func ToHTTPStatus(err error) int {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
