package redis

import (
	"context"
	"fmt"

	"github.com/jameselite/jobpulse/internal/domain/notification"
	goredis "github.com/redis/go-redis/v9"
)

type noteStoreImpl struct {
	rdb *goredis.Client
}

func NewNoteStore(rdb *goredis.Client) notification.NoteStore {
	return &noteStoreImpl{rdb: rdb}
}

func noteKey(userID int64) string {
	return fmt.Sprintf("user:%d:notes", userID)
}

// Get implements notification.NoteStore. A missing key means the user has no
// notifications yet, not an error.
func (s *noteStoreImpl) Get(ctx context.Context, userID int64) ([]string, error) {
	notes, err := s.rdb.LRange(ctx, noteKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", notification.ErrUnavailable, err)
	}
	return notes, nil
}

// Append implements notification.NoteStore. RPUSH is atomic on the server,
// so concurrent appends to one bucket cannot lose messages the way a
// read-modify-write of the whole list would.
func (s *noteStoreImpl) Append(ctx context.Context, userID int64, message string) error {
	if err := s.rdb.RPush(ctx, noteKey(userID), message).Err(); err != nil {
		return fmt.Errorf("%w: %v", notification.ErrUnavailable, err)
	}
	return nil
}
