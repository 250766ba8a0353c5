package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/position"
	"github.com/jameselite/jobpulse/internal/handler/http/response"
)

type PositionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
}

type PositionHandlerImpl struct {
	positionService position.PositionService
}

func NewPositionHandler(positionService position.PositionService) PositionHandler {
	return &PositionHandlerImpl{positionService: positionService}
}

// Create implements PositionHandler.
func (p *PositionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req position.CreatePositionRequest
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

	created, err := p.positionService.Create(r.Context(), slug, actingUserID, req)
	if err != nil {
		slog.Error("Failed to create position", "slug", slug, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", created)
}

// ListByCompany implements PositionHandler.
func (p *PositionHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	positions, err := p.positionService.ListByCompany(r.Context(), slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, positions)
}
