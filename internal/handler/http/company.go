package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jameselite/jobpulse/internal/domain/auth"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetBySlug(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ownerID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	created, err := c.companyService.Create(r.Context(), req, ownerID)
	if err != nil {
		slog.Error("Failed to create company", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", created)
}

// GetBySlug implements CompanyHandler.
func (c *CompanyHandlerImpl) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	found, err := c.companyService.GetBySlug(r.Context(), slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list companies", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req company.UpdateCompanyRequest
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

	updated, err := c.companyService.Update(r.Context(), slug, actingUserID, req)
	if err != nil {
		slog.Error("Failed to update company", "slug", slug, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", updated)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	actingUserID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := c.companyService.Delete(r.Context(), slug, actingUserID); err != nil {
		slog.Error("Failed to delete company", "slug", slug, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
