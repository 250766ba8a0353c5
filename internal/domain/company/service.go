package company

import "context"

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest, ownerID int64) (Company, error)
	GetBySlug(ctx context.Context, slug string) (CompanyResponse, error)
	Update(ctx context.Context, slug string, actingUserID int64, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, slug string, actingUserID int64) error
}
