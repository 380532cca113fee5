package errors

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"meetup/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() Details  // Field-keyed error context (optional)
}

// Details is the error context sent to clients, keyed by field name.
// Validation failures at the HTTP boundary use the same shape.
type Details map[string]string

// String renders the details as "key=value" pairs in key order
func (d Details) String() string {
	parts := make([]string, 0, len(d))
	for _, k := range slices.Sorted(maps.Keys(d)) {
		parts = append(parts, k+"="+d[k])
	}

	return strings.Join(parts, ", ")
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   Details
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details Details) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if len(e.details) > 0 {
		return e.message + ": " + e.details.String()
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() Details {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details Details) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so values derived
// through WithDetails still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	ErrUnknownCuisine = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CUISINE",
		"Unknown cuisine, see /api/v1/cuisines for the supported list",
		nil,
	)

	// Access gate errors
	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Incorrect password",
		nil,
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"A session token is required",
		nil,
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session token is invalid or expired",
		nil,
	)

	ErrAccessGateDisabled = NewBaseError(
		http.StatusNotFound,
		"ACCESS_GATE_DISABLED",
		"Password access is not enabled",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		nil,
	)
)

// Origin labels used by LocationNotFoundError
const (
	OriginA = "A"
	OriginB = "B"
)

// LocationNotFoundError reports an address the geocoder could not resolve.
// Origin names which of the two inputs failed so the caller can point at it.
type LocationNotFoundError struct {
	Origin string
	Query  string
}

// NewLocationNotFoundError creates a LocationNotFoundError for the given origin
func NewLocationNotFoundError(origin, query string) *LocationNotFoundError {
	return &LocationNotFoundError{Origin: origin, Query: query}
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location %s not found: %q", e.Origin, e.Query)
}

func (e *LocationNotFoundError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *LocationNotFoundError) ErrorCode() string {
	return "LOCATION_NOT_FOUND"
}

func (e *LocationNotFoundError) Message() string {
	return fmt.Sprintf("Could not find location %s, please check the address and try again", e.Origin)
}

func (e *LocationNotFoundError) Details() Details {
	return Details{"origin": e.Origin, "query": e.Query}
}

// UpstreamError wraps a failure of the maps provider (network, quota, auth,
// malformed response). The original cause is kept for logs only.
type UpstreamError struct {
	Operation string
	err       error
}

// NewUpstreamError creates an UpstreamError for the failed provider operation
func NewUpstreamError(operation string, err error) *UpstreamError {
	return &UpstreamError{Operation: operation, err: err}
}

func (e *UpstreamError) Error() string {
	if e.err == nil {
		return e.Operation + " failed"
	}

	return e.Operation + " failed: " + e.err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Cause lets pkg/errors.Cause walk through to the provider error
func (e *UpstreamError) Cause() error {
	return e.err
}

func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_UNAVAILABLE"
}

func (e *UpstreamError) Message() string {
	return "The maps service is unavailable right now, please try again later"
}

func (e *UpstreamError) Details() Details {
	return Details{"operation": e.Operation}
}
