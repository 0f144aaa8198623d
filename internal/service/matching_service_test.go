package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

func matchJob(id, skills string) *domain.Job {
	return &domain.Job{
		ID:             id,
		CompanyID:      "biz-1",
		Name:           "Job " + id,
		Skills:         skills,
		EmploymentType: domain.EmploymentRemote,
	}
}

func TestMatchingService_RelevantJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("scores and keeps store order on ties", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		personRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Person{ID: "p1", Skills: "react, node"}, nil).Once()
		jobRepo.On("FindMatching", mock.Anything, "p1", []string{"react", "node"}).
			Return([]*domain.Job{
				matchJob("j1", "React Developer"),
				matchJob("j2", "Node, Python"),
			}, nil).Once()

		matches, err := svc.RelevantJobs(ctx, "p1")

		require.NoError(t, err)
		require.Len(t, matches, 2)
		// Both score 1; store order must survive the sort.
		assert.Equal(t, "j1", matches[0].Job.ID)
		assert.Equal(t, 1, matches[0].Score)
		assert.Equal(t, "j2", matches[1].Job.ID)
		assert.Equal(t, 1, matches[1].Score)
	})

	t.Run("orders by descending score", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		personRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Person{ID: "p1", Skills: "go, sql, docker"}, nil).Once()
		jobRepo.On("FindMatching", mock.Anything, "p1", []string{"go", "sql", "docker"}).
			Return([]*domain.Job{
				matchJob("j1", "go"),
				matchJob("j2", "go, sql, docker"),
				matchJob("j3", "go, sql"),
			}, nil).Once()

		matches, err := svc.RelevantJobs(ctx, "p1")

		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, []string{"j2", "j3", "j1"}, []string{
			matches[0].Job.ID, matches[1].Job.ID, matches[2].Job.ID,
		})
		assert.Equal(t, []int{3, 2, 1}, []int{
			matches[0].Score, matches[1].Score, matches[2].Score,
		})
	})

	t.Run("drops coarse-filter survivors with no whole-token overlap", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		personRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Person{ID: "p1", Skills: "java"}, nil).Once()
		// "javascript" contains "java" as a substring but shares no token.
		jobRepo.On("FindMatching", mock.Anything, "p1", []string{"java"}).
			Return([]*domain.Job{matchJob("j1", "javascript")}, nil).Once()

		matches, err := svc.RelevantJobs(ctx, "p1")

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty skill set matches nothing", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		personRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Person{ID: "p1", Skills: ""}, nil).Once()

		matches, err := svc.RelevantJobs(ctx, "p1")

		require.NoError(t, err)
		assert.Empty(t, matches)
		jobRepo.AssertNotCalled(t, "FindMatching", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("person not found", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		personRepo.On("GetByID", mock.Anything, "ghost").
			Return(nil, repository.ErrPersonNotFound).Once()

		_, err := svc.RelevantJobs(ctx, "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("missing person id", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewMatchingService(jobRepo, personRepo)

		_, err := svc.RelevantJobs(ctx, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	})
}
