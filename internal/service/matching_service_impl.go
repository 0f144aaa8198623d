package service

import (
	"context"
	"errors"
	"sort"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/matching"
	"github.com/careerhive/jobmatch/internal/repository"
)

type matchingService struct {
	jobRepo    repository.JobRepository
	personRepo repository.PersonRepository
}

func NewMatchingService(jobRepo repository.JobRepository, personRepo repository.PersonRepository) MatchingService {
	return &matchingService{
		jobRepo:    jobRepo,
		personRepo: personRepo,
	}
}

func (s *matchingService) RelevantJobs(ctx context.Context, personID string) ([]*domain.JobMatch, error) {
	if personID == "" {
		return nil, domain.NewInvalidRequestError("person id is required")
	}

	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + personID)
		}
		return nil, err
	}

	candidateTokens := matching.Normalize(person.Skills)
	if len(candidateTokens) == 0 {
		return []*domain.JobMatch{}, nil
	}

	// Coarse substring pre-filter at the store; jobs the person already
	// works are excluded there as well.
	jobs, err := s.jobRepo.FindMatching(ctx, personID, candidateTokens)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		score := matching.Score(candidateTokens, matching.Normalize(job.Skills))
		if score == 0 {
			// The substring filter can pass jobs that share no whole token,
			// e.g. candidate "java" against job "javascript".
			continue
		}
		matches = append(matches, &domain.JobMatch{Job: job, Score: score})
	}

	// Stable: equal scores keep the store's return order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches, nil
}
