package request

import "errors"

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrRequestAlreadyDecided = errors.New("request already decided")
	ErrDenyReasonRequired    = errors.New("deny reason is required for rejection")
	ErrInvalidDecision       = errors.New("decision must be accepted or rejected")
)
