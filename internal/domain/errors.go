package domain

import (
	"errors"
	"fmt"
)

// Validation sentinels. A *ValidationError unwraps to exactly one of these.
var (
	ErrInvalidOriginCode      = errors.New("invalid origin code")
	ErrInvalidDestinationCode = errors.New("invalid destination code")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrInvalidMaxPrice        = errors.New("invalid max price")
	ErrInvalidPassengerCount  = errors.New("invalid passenger count")
)

// Search sentinels. Search errors unwrap to one of these.
var (
	// ErrAPI indicates the flight offers API answered with an error response.
	ErrAPI = errors.New("flight offers api error")

	// ErrClassificationFailure indicates an error response could not be interpreted.
	ErrClassificationFailure = errors.New("error response classification failed")

	// ErrTransport indicates the flight offers API could not be reached or answered garbage.
	ErrTransport = errors.New("flight offers api transport failure")
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	// Kind is one of the validation sentinels
	Kind error

	// Field is the input field that failed validation
	Field string

	// Message is a human-readable explanation
	Message string
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// APIError is an error response from the flight offers API, reduced to a single detail line.
type APIError struct {
	StatusCode int
	Detail     string
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

// ClassificationFailure means the error response itself was malformed.
// Message carries the reason classification gave up.
type ClassificationFailure struct {
	Message string
}

// NewClassificationFailure creates a ClassificationFailure.
func NewClassificationFailure(message string) *ClassificationFailure {
	return &ClassificationFailure{Message: message}
}

func (e *ClassificationFailure) Error() string {
	return "classify error response: " + e.Message
}

func (e *ClassificationFailure) Unwrap() error {
	return ErrClassificationFailure
}

// TransportError wraps a failure to exchange a request with the flight offers API.
type TransportError struct {
	// Op names the step that failed (e.g., "send request", "decode response")
	Op  string
	Err error
}

// NewTransportError creates a TransportError for the given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{
		Op:  op,
		Err: err,
	}
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "transport: " + e.Op
	}
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrTransport and the underlying cause, so callers can
// still match context.DeadlineExceeded and friends.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsValidationError checks if the error is a ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsAPIError checks if the error is an API error response.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsClassificationFailure checks if the error is a classification failure.
func IsClassificationFailure(err error) bool {
	return errors.Is(err, ErrClassificationFailure)
}

// IsTransportError checks if the error is a transport failure.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}
