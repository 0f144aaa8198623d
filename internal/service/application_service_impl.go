package service

import (
	"context"
	"errors"
	"slices"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type applicationService struct {
	jobRepo    repository.JobRepository
	personRepo repository.PersonRepository
}

func NewApplicationService(jobRepo repository.JobRepository, personRepo repository.PersonRepository) ApplicationService {
	return &applicationService{
		jobRepo:    jobRepo,
		personRepo: personRepo,
	}
}

func (s *applicationService) loadJob(ctx context.Context, jobID, personID string) (*domain.Job, error) {
	if jobID == "" {
		return nil, domain.NewInvalidRequestError("job id is required")
	}
	if personID == "" {
		return nil, domain.NewInvalidRequestError("person id is required")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domain.NewNotFoundError("job with id " + jobID)
		}
		return nil, err
	}

	return job, nil
}

func (s *applicationService) Apply(ctx context.Context, jobID, personID string) (*domain.Job, error) {
	job, err := s.loadJob(ctx, jobID, personID)
	if err != nil {
		return nil, err
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + personID)
		}
		return nil, err
	}

	if slices.Contains(job.AssignedTo, personID) {
		return nil, domain.ErrAlreadyAssigned
	}
	if slices.Contains(job.JobApplicants, personID) {
		return nil, domain.ErrAlreadyApplied
	}

	inserted, err := s.jobRepo.AddApplicant(ctx, jobID, personID)
	if err != nil {
		// The insert's assignee guard blocked: a concurrent accept promoted
		// the person between our membership check and the write.
		if errors.Is(err, repository.ErrPersonAssigned) {
			return nil, domain.ErrAlreadyAssigned
		}
		return nil, err
	}
	if !inserted {
		// A concurrent duplicate request won the race between our membership
		// check and the insert. The set is unchanged either way.
		return nil, domain.ErrAlreadyApplied
	}

	return s.jobRepo.GetByID(ctx, jobID)
}

// Accept moves the person into the assignee set. Prior application is not
// required: a business may assign a non-applicant directly. Idempotent.
func (s *applicationService) Accept(ctx context.Context, jobID, personID string) (*domain.Job, error) {
	if _, err := s.loadJob(ctx, jobID, personID); err != nil {
		return nil, err
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + personID)
		}
		return nil, err
	}

	if err := s.jobRepo.PromoteApplicant(ctx, jobID, personID); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + personID)
		}
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, jobID)
}

// Reject removes the person from the applicant set. Rejecting someone who
// never applied is a no-op, not an error. The assignee set is never touched.
func (s *applicationService) Reject(ctx context.Context, jobID, personID string) (*domain.Job, error) {
	if _, err := s.loadJob(ctx, jobID, personID); err != nil {
		return nil, err
	}

	if _, err := s.jobRepo.RemoveApplicant(ctx, jobID, personID); err != nil {
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, jobID)
}
