package errors

import (
	"fmt"
)

// Error is the single error type returned by the client. Code identifies the
// kind, Cause carries the underlying failure (transport error, json error, ...).
type Error struct {
	Code    ErrorCode
	Message string
	Status  int
	Details []string
	Cause   error
}

// ErrorOption is a functional option for configuring errors
type ErrorOption func(*Error)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(e *Error) {
		e.Details = append(e.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *Error) {
		e.Message = message
	}
}

// WithCause attaches the underlying error
func WithCause(cause error) ErrorOption {
	return func(e *Error) {
		e.Cause = cause
	}
}

// New creates an error with the default message for the code
func New(code ErrorCode, opts ...ErrorOption) *Error {
	e := &Error{
		Code:    code,
		Message: GetErrorMessage(code),
		Status:  GetHTTPStatus(code),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		for _, d := range e.Details {
			msg += "; " + d
		}
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same code, so the sentinels
// below can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsAPIError returns true if the bank rejected the request
func (e *Error) IsAPIError() bool {
	switch e.Code {
	case APIInvalidRequest, APITimeLimit, APITooManyItems, APIAuthorization,
		APIInvalidToken, APIUnexpectedStatus:
		return true
	}
	return false
}

// IsValidationError returns true for errors raised before any request was sent
func (e *Error) IsValidationError() bool {
	switch e.Code {
	case ValidationInvalidDateRange, ValidationInvalidParameter, ValidationInvalidFormat:
		return true
	}
	return false
}

// String returns a string representation including the code
func (e *Error) String() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Error())
}

// Sentinels for use with errors.Is
var (
	ErrInvalidTokenLength = &Error{Code: ConfigInvalidTokenLength}
	ErrInvalidDateRange   = &Error{Code: ValidationInvalidDateRange}
	ErrInvalidParameter   = &Error{Code: ValidationInvalidParameter}
	ErrInvalidFormat      = &Error{Code: ValidationInvalidFormat}
	ErrTransport          = &Error{Code: TransportRequestFailed}
	ErrInvalidRequest     = &Error{Code: APIInvalidRequest}
	ErrTimeLimit          = &Error{Code: APITimeLimit}
	ErrTooManyItems       = &Error{Code: APITooManyItems}
	ErrAuthorization      = &Error{Code: APIAuthorization}
	ErrInvalidToken       = &Error{Code: APIInvalidToken}
	ErrUnexpectedStatus   = &Error{Code: APIUnexpectedStatus}
	ErrInvalidResponse    = &Error{Code: DecodeInvalidResponse}
	ErrMissingOutput      = &Error{Code: UsageMissingOutput}
	ErrInvalidCommand     = &Error{Code: UsageInvalidCommand}
)

// NewInvalidTokenLength reports a token that is not exactly expected bytes long
func NewInvalidTokenLength(expected, actual int) *Error {
	return New(ConfigInvalidTokenLength,
		WithMessage(fmt.Sprintf("invalid token length: expected %d characters, got %d", expected, actual)))
}

// NewInvalidDateRange reports a period whose start is after its end
func NewInvalidDateRange(start, end fmt.Stringer) *Error {
	return New(ValidationInvalidDateRange,
		WithMessage(fmt.Sprintf("invalid date range: start %s must be before or equal to end %s", start, end)))
}

// NewInvalidParameter reports a rejected request parameter
func NewInvalidParameter(reason string) *Error {
	return New(ValidationInvalidParameter, WithMessage("invalid parameter: "+reason))
}

// NewInvalidResponse reports a response body that could not be decoded
func NewInvalidResponse(cause error) *Error {
	return New(DecodeInvalidResponse, WithCause(cause))
}

// NewTransportError wraps a network or timeout failure
func NewTransportError(cause error) *Error {
	return New(TransportRequestFailed, WithCause(cause))
}

// FromHTTPStatus classifies a response status. It returns nil for 2xx.
func FromHTTPStatus(status int) *Error {
	if status >= 200 && status < 300 {
		return nil
	}

	code := CodeForStatus(status)
	e := New(code)
	e.Status = status
	if code == APIUnexpectedStatus {
		e.Message = fmt.Sprintf("unexpected status %d", status)
	}
	return e
}
