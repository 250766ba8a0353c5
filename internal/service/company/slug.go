package company

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jameselite/jobpulse/internal/domain/company"
)

// slugCandidates yields the base slug for a name followed by numbered
// variants: acme-co, acme-co-1, acme-co-2, ... There is no upper bound.
type slugCandidates struct {
	base string
	n    int
}

func newSlugCandidates(name string) *slugCandidates {
	return &slugCandidates{base: slug.Make(name)}
}

func (s *slugCandidates) next() string {
	s.n++
	if s.n == 1 {
		return s.base
	}
	return fmt.Sprintf("%s-%d", s.base, s.n-1)
}

// firstFreeSlug probes the repository for the first candidate not currently
// in use. This is only a starting point: the probe and the eventual insert
// are not atomic, so the caller must still treat ErrSlugTaken from the write
// as "advance to the next candidate", never as a hard failure.
func firstFreeSlug(ctx context.Context, repo company.CompanyRepository, candidates *slugCandidates) (string, error) {
	for {
		candidate := candidates.next()
		exists, err := repo.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
