package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

// TeamService is a read-only projection: a "team" is the set of persons
// assigned to one of a business's jobs, derived from job_assignees. There is
// no stored team entity.
type TeamService interface {
	// Teams returns one record per job owned by the business, members
	// resolved to full person records.
	Teams(ctx context.Context, businessID string) ([]*domain.Team, error)

	// AssignedPersons flattens and dedupes members across all of the
	// business's jobs: "who works for me", not "who works on what".
	AssignedPersons(ctx context.Context, businessID string) ([]*domain.Person, error)
}
