package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/request"
	"github.com/jameselite/jobpulse/internal/handler/http/response"
)

type RequestHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListForCompany(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Apply implements RequestHandler.
func (h *RequestHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	positionID, err := strconv.ParseInt(chi.URLParam(r, "positionID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid position id", nil)
		return
	}

	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	created, err := h.requestService.Apply(r.Context(), positionID, userID)
	if err != nil {
		slog.Error("Failed to apply for position", "position_id", positionID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", request.RequestResponse{
		ID:         created.ID,
		UserID:     created.UserID,
		PositionID: created.PositionID,
		Status:     created.Status,
		DenyReason: created.DenyReason,
	})
}

// ListForCompany implements RequestHandler.
func (h *RequestHandlerImpl) ListForCompany(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	actingUserID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	requests, err := h.requestService.ListForCompany(r.Context(), slug, actingUserID)
	if err != nil {
		slog.Error("Failed to list requests", "slug", slug, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Decide implements RequestHandler.
func (h *RequestHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid request id", nil)
		return
	}

	var req request.DecideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actingUserID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	decided, err := h.requestService.Decide(r.Context(), requestID, request.Status(req.Decision), actingUserID, req.DenyReason)
	if err != nil {
		slog.Error("Failed to decide request", "request_id", requestID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request decided successfully", request.RequestResponse{
		ID:         decided.ID,
		UserID:     decided.UserID,
		PositionID: decided.PositionID,
		Status:     decided.Status,
		DenyReason: decided.DenyReason,
	})
}
