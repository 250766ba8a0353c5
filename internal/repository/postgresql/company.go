package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/jameselite/jobpulse/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = "id, name, slug, email, phone, address, description, pictures, owner_id, created_at, updated_at"

func scanCompany(row interface{ Scan(dest ...any) error }) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Email, &c.Phone, &c.Address,
		&c.Description, &c.Pictures, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// uniqueViolation maps a unique-constraint failure to its domain sentinel.
// Slug conflicts are the interesting case: the allocator relies on them to
// make slug reservation atomic.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "slug"):
		return company.ErrSlugTaken
	case strings.Contains(pgErr.ConstraintName, "email"):
		return company.ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return company.ErrPhoneTaken
	}
	return nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, slug, email, phone, address, description, pictures, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name, newCompany.Slug, newCompany.Email, newCompany.Phone,
		newCompany.Address, newCompany.Description, newCompany.Pictures, newCompany.OwnerID))
	if err != nil {
		if domainErr := uniqueViolation(err); domainErr != nil {
			return company.Company{}, domainErr
		}
		return company.Company{}, err
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)
	query := "SELECT " + companyColumns + " FROM companies WHERE id = $1"
	return scanCompany(q.QueryRow(ctx, query, id))
}

// GetBySlug implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetBySlug(ctx context.Context, slug string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)
	query := "SELECT " + companyColumns + " FROM companies WHERE slug = $1"
	return scanCompany(q.QueryRow(ctx, query, slug))
}

// GetByEmail implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)
	query := "SELECT " + companyColumns + " FROM companies WHERE email = $1"
	return scanCompany(q.QueryRow(ctx, query, email))
}

// GetByPhone implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByPhone(ctx context.Context, phone string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)
	query := "SELECT " + companyColumns + " FROM companies WHERE phone = $1"
	return scanCompany(q.QueryRow(ctx, query, phone))
}

// ExistsBySlug implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Pictures != nil {
		updates["pictures"] = req.Pictures
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for company update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if domainErr := uniqueViolation(err); domainErr != nil {
			return domainErr
		}
		return err
	}
	return nil
}

// UpdateSlug implements company.CompanyRepository.
func (c *companyRepositoryImpl) UpdateSlug(ctx context.Context, id int64, slug string) error {
	q := GetQuerier(ctx, c.db)

	var updatedID int64
	err := q.QueryRow(ctx,
		`UPDATE companies SET slug = $1, updated_at = $2 WHERE id = $3 RETURNING id`,
		slug, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if domainErr := uniqueViolation(err); domainErr != nil {
			return domainErr
		}
		return err
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	var deletedID int64
	return q.QueryRow(ctx, `DELETE FROM companies WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}
