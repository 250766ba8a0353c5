package request

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether the status can no longer be moderated.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Request is one candidate's application to one position.
// DenyReason is set if and only if Status is rejected.
type Request struct {
	ID         int64
	UserID     int64
	PositionID int64
	Status     Status
	DenyReason *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
