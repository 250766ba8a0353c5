package request

import "github.com/jameselite/jobpulse/internal/pkg/validator"

type DecideRequestRequest struct {
	Decision   string `json:"decision"`
	DenyReason string `json:"deny_reason,omitempty"`
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Decision, []string{string(StatusAccepted), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be either accepted or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	PositionID int64   `json:"position_id"`
	Status     Status  `json:"status"`
	DenyReason *string `json:"deny_reason,omitempty"`
}
