package request

import "context"

type RequestRepository interface {
	Create(ctx context.Context, newRequest Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]Request, error)
	// Decide moves the request out of pending. The update is conditional on
	// the row still being pending; a lost race surfaces as
	// ErrRequestAlreadyDecided instead of a silent last-write-wins.
	Decide(ctx context.Context, id int64, status Status, denyReason *string) error
}
