package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the client
type ErrorCode string

// Construction error codes (CONFIG_*)
const (
	ConfigInvalidTokenLength ErrorCode = "CONFIG_001"
	ConfigInvalidBaseURL     ErrorCode = "CONFIG_002"
	ConfigInvalid            ErrorCode = "CONFIG_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationInvalidDateRange ErrorCode = "VALIDATION_001"
	ValidationInvalidParameter ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat    ErrorCode = "VALIDATION_003"
)

// Transport error codes (TRANSPORT_*)
const (
	TransportRequestFailed ErrorCode = "TRANSPORT_001"
	TransportReadFailed    ErrorCode = "TRANSPORT_002"
)

// API error codes (API_*), one per documented status of the bank API
const (
	APIInvalidRequest   ErrorCode = "API_001"
	APITimeLimit        ErrorCode = "API_002"
	APITooManyItems     ErrorCode = "API_003"
	APIAuthorization    ErrorCode = "API_004"
	APIInvalidToken     ErrorCode = "API_005"
	APIUnexpectedStatus ErrorCode = "API_006"
)

// Decoding error codes (DECODE_*)
const (
	DecodeInvalidResponse ErrorCode = "DECODE_001"
)

// Usage error codes (USAGE_*), raised by the command line tool
const (
	UsageMissingOutput  ErrorCode = "USAGE_001"
	UsageInvalidCommand ErrorCode = "USAGE_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Construction errors
	ConfigInvalidTokenLength: "invalid token length",
	ConfigInvalidBaseURL:     "invalid base URL",
	ConfigInvalid:            "invalid configuration",

	// Validation errors
	ValidationInvalidDateRange: "invalid date range: start must be before or equal to end",
	ValidationInvalidParameter: "invalid parameter",
	ValidationInvalidFormat:    "unsupported output format",

	// Transport errors
	TransportRequestFailed: "http request failed",
	TransportReadFailed:    "failed to read response body",

	// API errors
	APIInvalidRequest:   "invalid request (404)",
	APITimeLimit:        "time limit exceeded (409)",
	APITooManyItems:     "too many items (413)",
	APIAuthorization:    "not authorized (422)",
	APIInvalidToken:     "invalid token (500)",
	APIUnexpectedStatus: "unexpected status",

	// Decoding errors
	DecodeInvalidResponse: "invalid or unexpected response format",

	// Usage errors
	UsageMissingOutput:  "output path required for binary formats (e.g. PDF)",
	UsageInvalidCommand: "invalid command usage",
}

// statusCodes maps the API error codes to the status the bank answers with.
// The mapping is the bank's documented convention and must not be reinterpreted.
var statusCodes = map[ErrorCode]int{
	APIInvalidRequest: http.StatusNotFound,
	APITimeLimit:      http.StatusConflict,
	APITooManyItems:   http.StatusRequestEntityTooLarge,
	APIAuthorization:  http.StatusUnprocessableEntity,
	APIInvalidToken:   http.StatusInternalServerError,
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "an error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the status the bank uses for an API error code.
// Codes without a documented status return 0.
func GetHTTPStatus(code ErrorCode) int {
	return statusCodes[code]
}

// CodeForStatus classifies a non-success status into an API error code
func CodeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return APIInvalidRequest
	case http.StatusConflict:
		return APITimeLimit
	case http.StatusRequestEntityTooLarge:
		return APITooManyItems
	case http.StatusUnprocessableEntity:
		return APIAuthorization
	case http.StatusInternalServerError:
		return APIInvalidToken
	default:
		return APIUnexpectedStatus
	}
}
