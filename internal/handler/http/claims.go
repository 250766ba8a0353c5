package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	jwtpkg "github.com/jameselite/jobpulse/internal/pkg/jwt"
)

// userIDFromRequest extracts the authenticated user's id from the verified
// JWT claims on the request context.
func userIDFromRequest(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	return jwtpkg.UserIDFromClaims(claims)
}
