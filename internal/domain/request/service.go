package request

import "context"

type RequestService interface {
	// Apply files a pending request for the acting user against a position.
	Apply(ctx context.Context, positionID, userID int64) (Request, error)
	// ListForCompany returns the requests targeting the company's positions,
	// restricted to the company owner.
	ListForCompany(ctx context.Context, companySlug string, actingUserID int64) ([]RequestResponse, error)
	// Decide applies the owner's accept/reject decision to a pending request
	// and notifies the requesting user.
	Decide(ctx context.Context, requestID int64, decision Status, actingUserID int64, denyReason string) (Request, error)
}
