package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type JobService interface {
	// CreateJob posts a new opening on behalf of a business.
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)

	// JobsForBusiness returns the business's postings with both membership
	// sets resolved to full person records.
	JobsForBusiness(ctx context.Context, businessID string) ([]*domain.JobRoster, error)

	// AllJobs returns the full catalog.
	AllJobs(ctx context.Context) ([]*domain.Job, error)
}
