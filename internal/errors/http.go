package errors

import (
	"fmt"
	"net/http"
)

// NewHTTPError classifies a non-2xx response from the backend. 404 wraps
// ErrNotFound so callers can test with errors.Is.
func NewHTTPError(statusCode int, body, operation string) *ClassifiedError {
	underlying := fmt.Errorf("%s failed: HTTP %d", operation, statusCode)
	if statusCode == http.StatusNotFound {
		underlying = fmt.Errorf("%s: %w", operation, ErrNotFound)
	}
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: underlying,
	}
}

// NewNetworkError classifies a request that never produced an HTTP status.
// Network-level failures are always considered recoverable.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		// 5xx and anything unexpected.
		return Recoverable
	}
}
