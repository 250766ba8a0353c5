package postgresql

import (
	"context"

	"github.com/jameselite/jobpulse/internal/domain/position"
	"github.com/jameselite/jobpulse/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (p *positionRepositoryImpl) Create(ctx context.Context, newPosition position.Position) (position.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO positions (name, company_id)
		VALUES ($1, $2)
		RETURNING id, name, company_id, created_at
	`

	var created position.Position
	err := q.QueryRow(ctx, query, newPosition.Name, newPosition.CompanyID).
		Scan(&created.ID, &created.Name, &created.CompanyID, &created.CreatedAt)
	if err != nil {
		return position.Position{}, err
	}
	return created, nil
}

// GetByID implements position.PositionRepository.
func (p *positionRepositoryImpl) GetByID(ctx context.Context, id int64) (position.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, company_id, created_at
		FROM positions
		WHERE id = $1
	`

	var found position.Position
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.CompanyID, &found.CreatedAt)
	if err != nil {
		return position.Position{}, err
	}
	return found, nil
}

// GetByCompanyID implements position.PositionRepository.
func (p *positionRepositoryImpl) GetByCompanyID(ctx context.Context, companyID int64) ([]position.Position, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, company_id, created_at
		FROM positions
		WHERE company_id = $1
		ORDER BY id
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var found position.Position
		if err := rows.Scan(&found.ID, &found.Name, &found.CompanyID, &found.CreatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, found)
	}
	return positions, rows.Err()
}

// Delete implements position.PositionRepository.
func (p *positionRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, p.db)

	var deletedID int64
	return q.QueryRow(ctx, `DELETE FROM positions WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
}
