package notification

import "context"

// NoteStore is the per-user notification bucket: an append-ordered list of
// plain text messages keyed by user id. A user with no bucket simply has no
// notifications yet.
type NoteStore interface {
	// Get returns the full bucket in append order. Missing bucket => empty.
	Get(ctx context.Context, userID int64) ([]string, error)
	// Append atomically adds one message to the end of the bucket, creating
	// it if absent.
	Append(ctx context.Context, userID int64, message string) error
}
