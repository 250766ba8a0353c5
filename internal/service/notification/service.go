package notification

import (
	"context"
	"fmt"

	"github.com/jameselite/jobpulse/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notes notification.NoteStore
}

func NewNotificationService(noteStore notification.NoteStore) notification.NotificationService {
	return &NotificationServiceImpl{notes: noteStore}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, userID int64) ([]string, error) {
	notes, err := s.notes.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications for user %d: %w", userID, err)
	}
	return notes, nil
}
