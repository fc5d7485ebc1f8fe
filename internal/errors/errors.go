// Package errors provides custom error types for the GlobeTrotter API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Only the trip owner can modify this trip", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Trip errors.
var (
	ErrTripNotFound      = &AppError{Code: "TRIP_NOT_FOUND", Message: "Trip not found", StatusCode: http.StatusNotFound}
	ErrInvalidDateRange  = &AppError{Code: "INVALID_INPUT", Message: "start_date must not be after end_date", StatusCode: http.StatusBadRequest}
	ErrTripRangeExcludes = &AppError{Code: "INVALID_INPUT", Message: "Trip dates must cover all of its stops", StatusCode: http.StatusBadRequest}
)

// Stop errors.
var (
	ErrStopNotFound    = &AppError{Code: "STOP_NOT_FOUND", Message: "Stop not found", StatusCode: http.StatusNotFound}
	ErrStopOutsideTrip = &AppError{Code: "INVALID_INPUT", Message: "Stop dates must fall within the trip dates", StatusCode: http.StatusBadRequest}
)

// Activity errors.
var (
	ErrActivityNotFound    = &AppError{Code: "ACTIVITY_NOT_FOUND", Message: "Activity not found", StatusCode: http.StatusNotFound}
	ErrActivityOutsideStop = &AppError{Code: "INVALID_INPUT", Message: "Activity date must fall within the stop dates", StatusCode: http.StatusBadRequest}
	ErrTemplateWrongCity   = &AppError{Code: "INVALID_INPUT", Message: "Activity template does not belong to the stop's city", StatusCode: http.StatusBadRequest}
)

// Catalog errors.
var (
	ErrCityNotFound     = &AppError{Code: "CITY_NOT_FOUND", Message: "City not found", StatusCode: http.StatusNotFound}
	ErrTemplateNotFound = &AppError{Code: "TEMPLATE_NOT_FOUND", Message: "Activity template not found", StatusCode: http.StatusNotFound}
)
