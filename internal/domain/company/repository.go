package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (Company, error)
	GetBySlug(ctx context.Context, slug string) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	GetByPhone(ctx context.Context, phone string) (Company, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Create inserts the company together with its slug in one statement.
	// A duplicate slug surfaces as ErrSlugTaken so the caller can retry with
	// the next candidate instead of racing a separate existence check.
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) error
	// UpdateSlug sets a new slug on the company. ErrSlugTaken on duplicates.
	UpdateSlug(ctx context.Context, id int64, slug string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Company, error)
}
