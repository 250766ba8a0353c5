package notification

import "errors"

var (
	// ErrUnavailable wraps a notification store failure. Appends are not
	// idempotent, so callers must not retry on it.
	ErrUnavailable = errors.New("notification store unavailable")
)
