package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jameselite/jobpulse/internal/domain/request"
	"github.com/jameselite/jobpulse/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

// Create implements request.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, newRequest request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO requests (user_id, position_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, position_id, status, deny_reason, created_at, updated_at
	`

	var created request.Request
	err := q.QueryRow(ctx, query, newRequest.UserID, newRequest.PositionID, request.StatusPending).
		Scan(&created.ID, &created.UserID, &created.PositionID, &created.Status,
			&created.DenyReason, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return request.Request{}, err
	}
	return created, nil
}

// GetByID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, position_id, status, deny_reason, created_at, updated_at
		FROM requests
		WHERE id = $1
	`

	var found request.Request
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.UserID, &found.PositionID, &found.Status,
			&found.DenyReason, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return request.Request{}, err
	}
	return found, nil
}

// GetByCompanyID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByCompanyID(ctx context.Context, companyID int64) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT r.id, r.user_id, r.position_id, r.status, r.deny_reason, r.created_at, r.updated_at
		FROM requests r
		JOIN positions p ON p.id = r.position_id
		WHERE p.company_id = $1
		ORDER BY r.id
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		var found request.Request
		if err := rows.Scan(&found.ID, &found.UserID, &found.PositionID, &found.Status,
			&found.DenyReason, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, found)
	}
	return requests, rows.Err()
}

// Decide implements request.RequestRepository. The WHERE clause only matches
// a pending row, so of two concurrent moderations exactly one commits and the
// other sees ErrRequestAlreadyDecided.
func (r *requestRepositoryImpl) Decide(ctx context.Context, id int64, status request.Status, denyReason *string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `
		UPDATE requests
		SET status = $1, deny_reason = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING id
	`, status, denyReason, time.Now(), id, request.StatusPending).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return request.ErrRequestAlreadyDecided
	}
	return err
}
