// Package errors provides the client's error taxonomy: pre-network
// validation failures, the explicit missing-token condition, and classified
// transport/HTTP errors.
package errors

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned by protected operations when the session has no
// bearer token (signed out, or the token fetch failed). Callers must handle
// it; it is never swallowed into a silent no-op.
var ErrNoToken = errors.New("no bearer token available")

// ErrNotFound is returned when the server reports 404 for a record.
var ErrNotFound = errors.New("record not found")

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorCategory tells callers whether a failure may be transient.
// The client never retries on its own; the category is informational for
// operator tooling and log triage.
type ErrorCategory int

const (
	// Recoverable failures may succeed on a later attempt: 5xx responses,
	// timeouts, connection resets.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will not improve by retrying: 400, 401, 403,
	// 404 and other client errors.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a transport or HTTP failure with its category, the
// HTTP status (0 for network-level failures) and a snippet of the response
// body for diagnostics.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int
	Body       string
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err is a classified error that should not
// be reattempted.
func IsIrrecoverable(err error) bool {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category == Irrecoverable
	}
	return false
}
