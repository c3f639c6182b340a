// Package response provides the JSON response builders shared by all handlers.
package response

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details maps field names to messages (validation errors only)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest        = "invalid_request"
	CodeValidationError       = "validation_error"
	CodeAPIError              = "api_error"
	CodeClassificationFailure = "classification_failure"
	CodeServiceUnavailable    = "service_unavailable"
	CodeTimeout               = "timeout"
	CodeInternalError         = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request"
	MsgValidationFailed   = "Request validation failed"
	MsgServiceUnavailable = "The flight offers service is currently unreachable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"

	msgAPIErrorPrefix       = "API Error: "
	msgClassificationPrefix = "An error occurred while processing the error response: "
)
