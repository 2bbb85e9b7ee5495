package slackmoji

import (
	"errors"

	apierrors "github.com/slackmoji/slackmoji/internal/errors"
)

// Error type aliases so callers can match on failure kinds while importing
// only this package.
type (
	// RemoteError means the service answered and explicitly reported failure.
	RemoteError = apierrors.RemoteError
	// TransportError means the HTTP exchange itself failed (non-2xx status).
	TransportError = apierrors.TransportError
)

// IsRemoteError reports whether err is (or wraps) a RemoteError.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
