package notification

import "context"

type NotificationService interface {
	// List returns every notification for the user, oldest first.
	List(ctx context.Context, userID int64) ([]string, error)
}
