package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/careerhive/jobmatch/internal/domain"
)

func TestTeamService_Teams(t *testing.T) {
	ctx := context.Background()

	t.Run("one team per job with resolved members", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewTeamService(jobRepo, personRepo)

		alice := &domain.Person{ID: "p1", FullName: "Alice"}
		bob := &domain.Person{ID: "p2", FullName: "Bob"}

		jobRepo.On("GetByCompany", mock.Anything, "biz-1").Return([]*domain.Job{
			{ID: "j1", Name: "Backend", AssignedTo: []string{"p1", "p2"}},
			{ID: "j2", Name: "Frontend", AssignedTo: []string{"p1"}},
			{ID: "j3", Name: "Design", AssignedTo: []string{}},
		}, nil).Once()
		personRepo.On("GetByIDs", mock.Anything, []string{"p1", "p2"}).
			Return([]*domain.Person{alice, bob}, nil).Once()
		personRepo.On("GetByIDs", mock.Anything, []string{"p1"}).
			Return([]*domain.Person{alice}, nil).Once()
		personRepo.On("GetByIDs", mock.Anything, []string{}).
			Return([]*domain.Person{}, nil).Once()

		teams, err := svc.Teams(ctx, "biz-1")

		require.NoError(t, err)
		require.Len(t, teams, 3)
		assert.Equal(t, "j1", teams[0].JobID)
		assert.Equal(t, "Backend", teams[0].JobName)
		assert.Equal(t, []*domain.Person{alice, bob}, teams[0].Members)
		assert.Equal(t, []*domain.Person{alice}, teams[1].Members)
		assert.Empty(t, teams[2].Members)
	})

	t.Run("missing business id is unauthorized", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewTeamService(jobRepo, personRepo)

		_, err := svc.Teams(ctx, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}

func TestTeamService_AssignedPersons(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deduplicated members", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewTeamService(jobRepo, personRepo)

		jobRepo.On("AssignedPersonsByCompany", mock.Anything, "biz-1").Return([]*domain.Person{
			{ID: "p1", FullName: "Alice"},
			{ID: "p2", FullName: "Bob"},
		}, nil).Once()

		persons, err := svc.AssignedPersons(ctx, "biz-1")

		require.NoError(t, err)
		require.Len(t, persons, 2)
		jobRepo.AssertExpectations(t)
	})

	t.Run("missing business id is unauthorized", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		personRepo := new(MockPersonRepository)
		svc := NewTeamService(jobRepo, personRepo)

		_, err := svc.AssignedPersons(ctx, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}
