package position

import "context"

type PositionService interface {
	// Create adds a position to the company, restricted to its owner.
	Create(ctx context.Context, companySlug string, actingUserID int64, req CreatePositionRequest) (Position, error)
	ListByCompany(ctx context.Context, companySlug string) ([]PositionResponse, error)
}
