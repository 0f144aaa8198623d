package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type teamService struct {
	jobRepo    repository.JobRepository
	personRepo repository.PersonRepository
}

func NewTeamService(jobRepo repository.JobRepository, personRepo repository.PersonRepository) TeamService {
	return &teamService{
		jobRepo:    jobRepo,
		personRepo: personRepo,
	}
}

func (s *teamService) Teams(ctx context.Context, businessID string) ([]*domain.Team, error) {
	if businessID == "" {
		return nil, domain.ErrUnauthorized
	}

	jobs, err := s.jobRepo.GetByCompany(ctx, businessID)
	if err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(jobs))
	for _, job := range jobs {
		members, err := s.personRepo.GetByIDs(ctx, job.AssignedTo)
		if err != nil {
			return nil, err
		}
		teams = append(teams, &domain.Team{
			JobID:   job.ID,
			JobName: job.Name,
			Members: members,
		})
	}

	return teams, nil
}

func (s *teamService) AssignedPersons(ctx context.Context, businessID string) ([]*domain.Person, error) {
	if businessID == "" {
		return nil, domain.ErrUnauthorized
	}

	return s.jobRepo.AssignedPersonsByCompany(ctx, businessID)
}
