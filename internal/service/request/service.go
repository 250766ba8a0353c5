package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/domain/notification"
	"github.com/jameselite/jobpulse/internal/domain/position"
	"github.com/jameselite/jobpulse/internal/domain/request"
)

type RequestServiceImpl struct {
	request.RequestRepository
	positionRepo position.PositionRepository
	companyRepo  company.CompanyRepository
	notes        notification.NoteStore
}

func NewRequestService(
	requestRepository request.RequestRepository,
	positionRepository position.PositionRepository,
	companyRepository company.CompanyRepository,
	noteStore notification.NoteStore,
) request.RequestService {
	return &RequestServiceImpl{
		RequestRepository: requestRepository,
		positionRepo:      positionRepository,
		companyRepo:       companyRepository,
		notes:             noteStore,
	}
}

// Apply implements request.RequestService.
func (s *RequestServiceImpl) Apply(ctx context.Context, positionID, userID int64) (request.Request, error) {
	if _, err := s.positionRepo.GetByID(ctx, positionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, position.ErrPositionNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get position by id: %w", err)
	}

	created, err := s.RequestRepository.Create(ctx, request.Request{
		UserID:     userID,
		PositionID: positionID,
		Status:     request.StatusPending,
	})
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}
	return created, nil
}

// ListForCompany implements request.RequestService.
func (s *RequestServiceImpl) ListForCompany(ctx context.Context, companySlug string, actingUserID int64) ([]request.RequestResponse, error) {
	comp, err := s.companyRepo.GetBySlug(ctx, companySlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by slug: %w", err)
	}

	if comp.OwnerID != actingUserID {
		return nil, company.ErrNotCompanyOwner
	}

	requests, err := s.RequestRepository.GetByCompanyID(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for company %d: %w", comp.ID, err)
	}

	responses := make([]request.RequestResponse, len(requests))
	for i, req := range requests {
		responses[i] = request.RequestResponse{
			ID:         req.ID,
			UserID:     req.UserID,
			PositionID: req.PositionID,
			Status:     req.Status,
			DenyReason: req.DenyReason,
		}
	}
	return responses, nil
}

// Decide implements request.RequestService. The requesting user is notified
// before the status update commits; if the notification append fails the
// request stays pending rather than silently resolving without a message.
// Neither step is retried: the append is not idempotent, so a retry could
// notify the same user twice.
func (s *RequestServiceImpl) Decide(ctx context.Context, requestID int64, decision request.Status, actingUserID int64, denyReason string) (request.Request, error) {
	switch decision {
	case request.StatusAccepted:
	case request.StatusRejected:
		if denyReason == "" {
			return request.Request{}, request.ErrDenyReasonRequired
		}
	default:
		return request.Request{}, request.ErrInvalidDecision
	}

	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get request by id: %w", err)
	}

	pos, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, position.ErrPositionNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get position by id: %w", err)
	}

	comp, err := s.companyRepo.GetByID(ctx, pos.CompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, company.ErrCompanyNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	if comp.OwnerID != actingUserID {
		return request.Request{}, company.ErrNotCompanyOwner
	}

	if req.Status.IsTerminal() {
		return request.Request{}, request.ErrRequestAlreadyDecided
	}

	if err := s.notes.Append(ctx, req.UserID, decisionMessage(decision, pos.Name, denyReason)); err != nil {
		return request.Request{}, err
	}

	var reason *string
	if decision == request.StatusRejected {
		reason = &denyReason
	}

	// Conditional on the row still being pending; a concurrent decision that
	// won the race surfaces here as ErrRequestAlreadyDecided.
	if err := s.RequestRepository.Decide(ctx, req.ID, decision, reason); err != nil {
		if errors.Is(err, request.ErrRequestAlreadyDecided) {
			return request.Request{}, request.ErrRequestAlreadyDecided
		}
		return request.Request{}, fmt.Errorf("failed to update request %d: %w", req.ID, err)
	}

	req.Status = decision
	req.DenyReason = reason
	return req, nil
}

func decisionMessage(decision request.Status, positionName, denyReason string) string {
	if decision == request.StatusAccepted {
		return fmt.Sprintf("your request for %s has been accepted!", positionName)
	}
	return fmt.Sprintf("your request for %s has been rejected, here is why: %s", positionName, denyReason)
}
