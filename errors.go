package homeslice

import (
	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
)

// Re-export shared SDK errors so callers compare against single symbols.
var (
	// ErrNoToken is returned by protected operations when the session has
	// no bearer token: nobody is signed in, auth state is still resolving,
	// or the token fetch failed. No network call is made in that case.
	ErrNoToken = clienterrors.ErrNoToken

	// ErrNotFound is returned when the server reports 404 for a record.
	ErrNotFound = clienterrors.ErrNotFound
)

// ValidationError reports input rejected before any network call.
type ValidationError = clienterrors.ValidationError

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool { return clienterrors.IsValidation(err) }

// IsIrrecoverable reports whether err is a classified HTTP error that will
// not improve by retrying.
func IsIrrecoverable(err error) bool { return clienterrors.IsIrrecoverable(err) }
