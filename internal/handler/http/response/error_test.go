package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/domain/notification"
	"github.com/jameselite/jobpulse/internal/domain/request"
	"github.com/jameselite/jobpulse/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"company not found", company.ErrCompanyNotFound, http.StatusNotFound},
		{"not company owner", company.ErrNotCompanyOwner, http.StatusForbidden},
		{"slug taken", company.ErrSlugTaken, http.StatusConflict},
		{"request not found", request.ErrRequestNotFound, http.StatusNotFound},
		{"request already decided", request.ErrRequestAlreadyDecided, http.StatusConflict},
		{"deny reason required", request.ErrDenyReasonRequired, http.StatusBadRequest},
		{"invalid decision", request.ErrInvalidDecision, http.StatusBadRequest},
		{"notification store down", notification.ErrUnavailable, http.StatusBadGateway},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, http.StatusGatewayTimeout},
		{"wrapped deadline", fmt.Errorf("failed to get request by id: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: dial tcp: connection refused", notification.ErrUnavailable))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "decision", Message: "decision must be either accepted or rejected"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "decision")
}
