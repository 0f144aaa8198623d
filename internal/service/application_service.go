package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

// ApplicationService drives the per-(job, person) application state machine:
// None -> Applied via Apply, Applied/None -> Assigned via Accept,
// Applied -> None via Reject. Assigned is never exited.
type ApplicationService interface {
	Apply(ctx context.Context, jobID, personID string) (*domain.Job, error)
	Accept(ctx context.Context, jobID, personID string) (*domain.Job, error)
	Reject(ctx context.Context, jobID, personID string) (*domain.Job, error)
}
