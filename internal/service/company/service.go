package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/pkg/database"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	tx database.Transactor
}

func NewCompanyService(companyRepository company.CompanyRepository, tx database.Transactor) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepository, tx: tx}
}

// Create implements company.CompanyService. The slug is reserved by the
// insert itself: ErrSlugTaken means another writer claimed the candidate
// between the probe and the insert, so we move on to the next one.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest, ownerID int64) (company.Company, error) {
	if _, err := c.CompanyRepository.GetByEmail(ctx, req.Email); err == nil {
		return company.Company{}, company.ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, fmt.Errorf("failed to check company email: %w", err)
	}

	if _, err := c.CompanyRepository.GetByPhone(ctx, req.Phone); err == nil {
		return company.Company{}, company.ErrPhoneTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, fmt.Errorf("failed to check company phone: %w", err)
	}

	candidates := newSlugCandidates(req.Name)
	for {
		candidate, err := firstFreeSlug(ctx, c.CompanyRepository, candidates)
		if err != nil {
			return company.Company{}, err
		}

		created, err := c.CompanyRepository.Create(ctx, company.Company{
			Name:        req.Name,
			Slug:        candidate,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			Description: req.Description,
			Pictures:    req.Pictures,
			OwnerID:     ownerID,
		})
		if errors.Is(err, company.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return company.Company{}, fmt.Errorf("failed to create company: %w", err)
		}
		return created, nil
	}
}

// GetBySlug implements company.CompanyService.
func (c *CompanyServiceImpl) GetBySlug(ctx context.Context, slug string) (company.CompanyResponse, error) {
	found, err := c.CompanyRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by slug: %w", err)
	}
	return toResponse(found), nil
}

// Update implements company.CompanyService. Renaming the company reallocates
// its slug, except when the name is unchanged: that is a no-op for the slug.
// Name and slug move in one transaction, so a failed slug write never leaves
// the company renamed with a stale slug. A unique violation aborts the whole
// transaction; the retry re-applies the update with the next candidate.
func (c *CompanyServiceImpl) Update(ctx context.Context, slug string, actingUserID int64, req company.UpdateCompanyRequest) (company.Company, error) {
	existing, err := c.CompanyRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by slug: %w", err)
	}

	if existing.OwnerID != actingUserID {
		return company.Company{}, company.ErrNotCompanyOwner
	}

	needsNewSlug := req.Name != nil && *req.Name != existing.Name
	var candidates *slugCandidates
	if needsNewSlug {
		candidates = newSlugCandidates(*req.Name)
	}

	for {
		err := c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := c.CompanyRepository.Update(txCtx, existing.ID, req); err != nil {
				return fmt.Errorf("failed to update company with id %d: %w", existing.ID, err)
			}
			if !needsNewSlug {
				return nil
			}

			candidate, err := firstFreeSlug(txCtx, c.CompanyRepository, candidates)
			if err != nil {
				return err
			}
			if err := c.CompanyRepository.UpdateSlug(txCtx, existing.ID, candidate); err != nil {
				return fmt.Errorf("failed to update slug for company %d: %w", existing.ID, err)
			}
			return nil
		})
		if errors.Is(err, company.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return company.Company{}, err
		}
		break
	}

	updated, err := c.CompanyRepository.GetByID(ctx, existing.ID)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to reload company with id %d: %w", existing.ID, err)
	}
	return updated, nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, slug string, actingUserID int64) error {
	existing, err := c.CompanyRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company by slug: %w", err)
	}

	if existing.OwnerID != actingUserID {
		return company.ErrNotCompanyOwner
	}

	if err := c.CompanyRepository.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete company with id %d: %w", existing.ID, err)
	}
	return nil
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, len(companies))
	for i, found := range companies {
		responses[i] = toResponse(found)
	}
	return responses, nil
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Description: c.Description,
		Pictures:    c.Pictures,
	}
}
