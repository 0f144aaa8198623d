package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type MatchingService interface {
	// RelevantJobs returns the jobs matching the person's skill set, ordered
	// by descending relevance score. A person with no declared skills
	// matches nothing.
	RelevantJobs(ctx context.Context, personID string) ([]*domain.JobMatch, error)
}
