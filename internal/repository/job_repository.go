package repository

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetAll(ctx context.Context) ([]*domain.Job, error)
	GetByCompany(ctx context.Context, businessID string) ([]*domain.Job, error)

	// FindMatching is the coarse pre-filter: jobs where the person is not an
	// assignee and the raw skills text contains at least one of the tokens
	// (case-insensitive substring). Precise token-set scoring happens in the
	// service layer.
	FindMatching(ctx context.Context, personID string, tokens []string) ([]*domain.Job, error)

	// AddApplicant inserts the person into the job's applicant set. The
	// insert is guarded against the assignee set in the same statement, so
	// a concurrent promotion cannot put the person in both sets. Returns
	// false without error when the person had already applied, and
	// ErrPersonAssigned when the guard blocked the insert.
	AddApplicant(ctx context.Context, jobID, personID string) (bool, error)

	// RemoveApplicant deletes the person from the applicant set.
	// Returns false without error when the person was not present.
	RemoveApplicant(ctx context.Context, jobID, personID string) (bool, error)

	// PromoteApplicant moves the person into the assignee set in a single
	// transaction: delete from applicants (no-op if absent), insert into
	// assignees unless already there. Idempotent.
	PromoteApplicant(ctx context.Context, jobID, personID string) error

	// AssignedPersonsByCompany returns the distinct persons assigned to at
	// least one of the business's jobs.
	AssignedPersonsByCompany(ctx context.Context, businessID string) ([]*domain.Person, error)
}
