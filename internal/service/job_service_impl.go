package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type jobService struct {
	jobRepo      repository.JobRepository
	businessRepo repository.BusinessRepository
	personRepo   repository.PersonRepository
}

func NewJobService(
	jobRepo repository.JobRepository,
	businessRepo repository.BusinessRepository,
	personRepo repository.PersonRepository,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		businessRepo: businessRepo,
		personRepo:   personRepo,
	}
}

func (s *jobService) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	switch {
	case job.CompanyID == "":
		return nil, domain.ErrUnauthorized
	case job.Name == "":
		return nil, domain.NewInvalidRequestError("name is required")
	case job.Description == "":
		return nil, domain.NewInvalidRequestError("description is required")
	case job.Skills == "":
		return nil, domain.NewInvalidRequestError("skills is required")
	case job.Location == "":
		return nil, domain.NewInvalidRequestError("location is required")
	case !job.EmploymentType.Valid():
		return nil, domain.NewInvalidRequestError("employment type must be remote, on-site or hybrid")
	case job.NumberOfPositions < 0:
		return nil, domain.NewInvalidRequestError("number of positions must be at least 1")
	}

	business, err := s.businessRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domain.NewNotFoundError("business with id " + job.CompanyID)
		}
		return nil, err
	}

	job.ID = uuid.NewString()
	job.CompanyName = business.Name
	if job.NumberOfPositions == 0 {
		job.NumberOfPositions = 1
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("seeded person")
		}
		return nil, err
	}

	return s.jobRepo.GetByID(ctx, job.ID)
}

func (s *jobService) JobsForBusiness(ctx context.Context, businessID string) ([]*domain.JobRoster, error) {
	if businessID == "" {
		return nil, domain.ErrUnauthorized
	}

	jobs, err := s.jobRepo.GetByCompany(ctx, businessID)
	if err != nil {
		return nil, err
	}

	rosters := make([]*domain.JobRoster, 0, len(jobs))
	for _, job := range jobs {
		assigned, err := s.personRepo.GetByIDs(ctx, job.AssignedTo)
		if err != nil {
			return nil, err
		}
		applicants, err := s.personRepo.GetByIDs(ctx, job.JobApplicants)
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, &domain.JobRoster{
			Job:        job,
			Assigned:   assigned,
			Applicants: applicants,
		})
	}

	return rosters, nil
}

func (s *jobService) AllJobs(ctx context.Context) ([]*domain.Job, error) {
	return s.jobRepo.GetAll(ctx)
}
