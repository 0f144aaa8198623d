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

func validJobInput() *domain.Job {
	return &domain.Job{
		CompanyID:      "biz-1",
		Name:           "Backend Engineer",
		Description:    "builds APIs",
		Skills:         "go, postgres",
		Location:       "Berlin",
		EmploymentType: domain.EmploymentRemote,
	}
}

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and defaults positions to one", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		businessRepo := new(MockBusinessRepository)
		personRepo := new(MockPersonRepository)
		svc := NewJobService(jobRepo, businessRepo, personRepo)

		businessRepo.On("GetByID", mock.Anything, "biz-1").
			Return(&domain.Business{ID: "biz-1", Name: "Acme"}, nil).Once()
		jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(job *domain.Job) bool {
			return job.ID != "" && job.CompanyName == "Acme" && job.NumberOfPositions == 1
		})).Return(nil).Once()
		jobRepo.On("GetByID", mock.Anything, mock.AnythingOfType("string")).
			Return(&domain.Job{ID: "j1", Name: "Backend Engineer"}, nil).Once()

		created, err := svc.CreateJob(ctx, validJobInput())

		require.NoError(t, err)
		assert.Equal(t, "j1", created.ID)
		jobRepo.AssertExpectations(t)
	})

	t.Run("missing company id is unauthorized", func(t *testing.T) {
		svc := NewJobService(new(MockJobRepository), new(MockBusinessRepository), new(MockPersonRepository))

		input := validJobInput()
		input.CompanyID = ""
		_, err := svc.CreateJob(ctx, input)

		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*domain.Job)
		}{
			{"empty name", func(j *domain.Job) { j.Name = "" }},
			{"empty description", func(j *domain.Job) { j.Description = "" }},
			{"empty skills", func(j *domain.Job) { j.Skills = "" }},
			{"empty location", func(j *domain.Job) { j.Location = "" }},
			{"bad employment type", func(j *domain.Job) { j.EmploymentType = "freelance" }},
			{"negative positions", func(j *domain.Job) { j.NumberOfPositions = -1 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				jobRepo := new(MockJobRepository)
				svc := NewJobService(jobRepo, new(MockBusinessRepository), new(MockPersonRepository))

				input := validJobInput()
				tc.mutate(input)
				_, err := svc.CreateJob(ctx, input)

				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
				jobRepo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("unknown business", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewJobService(jobRepo, businessRepo, new(MockPersonRepository))

		businessRepo.On("GetByID", mock.Anything, "biz-1").
			Return(nil, repository.ErrBusinessNotFound).Once()

		_, err := svc.CreateJob(ctx, validJobInput())

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		jobRepo.AssertNotCalled(t, "Create")
	})
}

func TestJobService_JobsForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves both rosters per job", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewJobService(jobRepo, new(MockBusinessRepository), personRepo)

		alice := &domain.Person{ID: "p1", FullName: "Alice"}
		bob := &domain.Person{ID: "p2", FullName: "Bob"}

		jobRepo.On("GetByCompany", mock.Anything, "biz-1").Return([]*domain.Job{
			{ID: "j1", AssignedTo: []string{"p1"}, JobApplicants: []string{"p2"}},
		}, nil).Once()
		personRepo.On("GetByIDs", mock.Anything, []string{"p1"}).
			Return([]*domain.Person{alice}, nil).Once()
		personRepo.On("GetByIDs", mock.Anything, []string{"p2"}).
			Return([]*domain.Person{bob}, nil).Once()

		rosters, err := svc.JobsForBusiness(ctx, "biz-1")

		require.NoError(t, err)
		require.Len(t, rosters, 1)
		assert.Equal(t, []*domain.Person{alice}, rosters[0].Assigned)
		assert.Equal(t, []*domain.Person{bob}, rosters[0].Applicants)
	})

	t.Run("missing business id is unauthorized", func(t *testing.T) {
		svc := NewJobService(new(MockJobRepository), new(MockBusinessRepository), new(MockPersonRepository))

		_, err := svc.JobsForBusiness(ctx, "")

		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}

func TestJobService_AllJobs(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := NewJobService(jobRepo, new(MockBusinessRepository), new(MockPersonRepository))

	jobRepo.On("GetAll", mock.Anything).
		Return([]*domain.Job{{ID: "j1"}, {ID: "j2"}}, nil).Once()

	jobs, err := svc.AllJobs(context.Background())

	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
