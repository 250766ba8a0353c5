package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, newPosition Position) (Position, error)
	GetByID(ctx context.Context, id int64) (Position, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]Position, error)
	Delete(ctx context.Context, id int64) error
}
