package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/domain/notification"
	"github.com/jameselite/jobpulse/internal/domain/position"
	"github.com/jameselite/jobpulse/internal/domain/request"
	"github.com/jameselite/jobpulse/internal/domain/user"
	"github.com/jameselite/jobpulse/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNotCompanyOwner):
		Forbidden(w, "You are not the owner of this company")
	case errors.Is(err, company.ErrEmailTaken):
		Conflict(w, "Company email already registered")
	case errors.Is(err, company.ErrPhoneTaken):
		Conflict(w, "Company phone already registered")
	case errors.Is(err, company.ErrSlugTaken):
		Conflict(w, "Company slug already taken")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyDecided):
		Conflict(w, "Request already decided")
	case errors.Is(err, request.ErrDenyReasonRequired):
		BadRequest(w, "Deny reason is required for rejection", nil)
	case errors.Is(err, request.ErrInvalidDecision):
		BadRequest(w, "Decision must be accepted or rejected", nil)

	// Notification store errors
	case errors.Is(err, notification.ErrUnavailable):
		BadGateway(w, "There is a problem sending the notification")

	// Context expiry, wrapped by the store layers
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		GatewayTimeout(w, "The operation timed out")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
