package safecall

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v67/github"
)

// StatusCarrier is the capability a failure must expose to be classified by
// status code. Any error in the chain (via errors.As) implementing it is
// considered status-classified.
//
// Transport adapters implement this on their error types so Execute can match
// their failures against an ExpectedErrors map.
type StatusCarrier interface {
	// StatusCode returns the response status code associated with the failure.
	// A non-positive value means the failure carries no usable code.
	StatusCode() int
}

// httpStatusCarrier matches error types that follow the HTTPStatus accessor
// convention instead of StatusCode.
type httpStatusCarrier interface {
	HTTPStatus() int
}

// StatusError is the canonical status-carrying error for transports that do not
// bring their own. It is compatible with errors.Is, errors.As and errors.Unwrap.
type StatusError struct {
	code    int
	message string
	cause   error
}

// Compile-time guarantee that *StatusError implements StatusCarrier.
var _ StatusCarrier = (*StatusError)(nil)

// NewStatusError creates a StatusError with the given status code and message.
//
// Example:
//
//	err := safecall.NewStatusError(http.StatusNotFound, "user not found")
func NewStatusError(code int, message string) *StatusError {
	return &StatusError{
		code:    code,
		message: message,
	}
}

// WrapStatus wraps an existing error with a status code while preserving the
// original error chain. Returns nil if err is nil.
//
// Example:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return safecall.WrapStatus(err, resp.StatusCode, "request failed")
//	}
func WrapStatus(err error, code int, message string) *StatusError {
	if err == nil {
		return nil
	}

	return &StatusError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Error returns the string representation of the error.
// Format: "[code] message" or "[code] message: cause" if a cause is present.
func (e *StatusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%d] %s", e.code, e.message)
}

// StatusCode returns the response status code carried by the error.
func (e *StatusError) StatusCode() int {
	return e.code
}

// Message returns the human-readable error message.
func (e *StatusError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *StatusError) Unwrap() error {
	return e.cause
}

// ErrorFromResponse builds a StatusError from a non-2xx HTTP response.
// Returns nil for a nil response or a success status.
//
// This is a convenience for callers wrapping raw net/http transports; SDK-based
// transports (e.g. go-github) already produce errors StatusFromError recognizes.
func ErrorFromResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	return NewStatusError(resp.StatusCode, http.StatusText(resp.StatusCode))
}

// StatusFromError extracts the response status code from a failure, reporting
// whether the failure is status-classified at all.
//
// The error chain is inspected for, in order:
//   - StatusCarrier (the StatusCode accessor)
//   - the HTTPStatus accessor convention
//   - go-github response errors (*github.ErrorResponse, *github.RateLimitError,
//     *github.AbuseRateLimitError)
//
// A non-positive code is treated as absent: the failure is not status-classified
// and can never match an ExpectedErrors key, even a zero key.
func StatusFromError(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	if code, ok := statusFromChain(err); ok && code > 0 {
		return code, true
	}

	return 0, false
}

// statusFromChain walks the error chain for any of the recognized carriers.
func statusFromChain(err error) (int, bool) {
	var carrier StatusCarrier
	if errors.As(err, &carrier) {
		return carrier.StatusCode(), true
	}

	var httpCarrier httpStatusCarrier
	if errors.As(err, &httpCarrier) {
		return httpCarrier.HTTPStatus(), true
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode, true
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode, true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode, true
	}

	return 0, false
}

// IsStatus returns true if the failure is status-classified and carries exactly
// the given code.
//
// Example:
//
//	if safecall.IsStatus(err, http.StatusNotFound) {
//	    // Handle not found
//	}
func IsStatus(err error, code int) bool {
	got, ok := StatusFromError(err)
	return ok && got == code
}
