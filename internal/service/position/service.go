package position

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/domain/position"
)

type PositionServiceImpl struct {
	position.PositionRepository
	companyRepo company.CompanyRepository
}

func NewPositionService(positionRepository position.PositionRepository, companyRepository company.CompanyRepository) position.PositionService {
	return &PositionServiceImpl{
		PositionRepository: positionRepository,
		companyRepo:        companyRepository,
	}
}

// Create implements position.PositionService.
func (s *PositionServiceImpl) Create(ctx context.Context, companySlug string, actingUserID int64, req position.CreatePositionRequest) (position.Position, error) {
	comp, err := s.companyRepo.GetBySlug(ctx, companySlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, company.ErrCompanyNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get company by slug: %w", err)
	}

	if comp.OwnerID != actingUserID {
		return position.Position{}, company.ErrNotCompanyOwner
	}

	created, err := s.PositionRepository.Create(ctx, position.Position{
		Name:      req.Name,
		CompanyID: comp.ID,
	})
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return created, nil
}

// ListByCompany implements position.PositionService.
func (s *PositionServiceImpl) ListByCompany(ctx context.Context, companySlug string) ([]position.PositionResponse, error) {
	comp, err := s.companyRepo.GetBySlug(ctx, companySlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by slug: %w", err)
	}

	positions, err := s.PositionRepository.GetByCompanyID(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions for company %d: %w", comp.ID, err)
	}

	responses := make([]position.PositionResponse, len(positions))
	for i, p := range positions {
		responses[i] = position.PositionResponse{
			ID:        p.ID,
			Name:      p.Name,
			CompanyID: p.CompanyID,
		}
	}
	return responses, nil
}
