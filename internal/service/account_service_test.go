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

func TestAccountService_CreatePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and persists", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		person := &domain.Person{FullName: "Alice", Email: "alice@example.com", Skills: "go"}
		personRepo.On("Create", mock.Anything, person).Return(nil).Once()

		created, err := svc.CreatePerson(ctx, person)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		personRepo.AssertExpectations(t)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		person := &domain.Person{FullName: "Alice", Email: "alice@example.com"}
		personRepo.On("Create", mock.Anything, person).Return(repository.ErrDuplicateEmail).Once()

		_, err := svc.CreatePerson(ctx, person)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmailTaken))
	})

	t.Run("missing email", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		_, err := svc.CreatePerson(ctx, &domain.Person{FullName: "Alice"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	})
}

func TestAccountService_UpdatePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("updates skills and location, email immutable", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		existing := &domain.Person{ID: "p1", FullName: "Alice", Email: "alice@example.com", Skills: "go"}
		update := &domain.Person{ID: "p1", FullName: "Alice", Email: "other@example.com", Skills: "go, sql", Location: "Berlin"}

		personRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil).Once()
		personRepo.On("Update", mock.Anything, update).Return(nil).Once()
		personRepo.On("GetByID", mock.Anything, "p1").Return(update, nil).Once()

		updated, err := svc.UpdatePerson(ctx, update)

		require.NoError(t, err)
		// The stored email wins over whatever the request carried.
		assert.Equal(t, "alice@example.com", update.Email)
		assert.Equal(t, "go, sql", updated.Skills)
	})

	t.Run("omitted fields keep stored values", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		existing := &domain.Person{ID: "p1", FullName: "Alice", Email: "alice@example.com", Skills: "go, sql", Location: "Berlin"}
		update := &domain.Person{ID: "p1"}

		personRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil).Once()
		personRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Person) bool {
			return p.FullName == "Alice" && p.Skills == "go, sql" && p.Location == "Berlin"
		})).Return(nil).Once()
		personRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil).Once()

		_, err := svc.UpdatePerson(ctx, update)

		require.NoError(t, err)
		personRepo.AssertExpectations(t)
	})

	t.Run("person not found", func(t *testing.T) {
		personRepo := new(MockPersonRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewAccountService(personRepo, businessRepo)

		personRepo.On("GetByID", mock.Anything, "ghost").
			Return(nil, repository.ErrPersonNotFound).Once()

		_, err := svc.UpdatePerson(ctx, &domain.Person{ID: "ghost"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestAccountService_CreateBusiness(t *testing.T) {
	ctx := context.Background()

	personRepo := new(MockPersonRepository)
	businessRepo := new(MockBusinessRepository)
	svc := NewAccountService(personRepo, businessRepo)

	business := &domain.Business{Name: "Acme", Email: "hr@acme.test", Field: "logistics"}
	businessRepo.On("Create", mock.Anything, business).Return(nil).Once()

	created, err := svc.CreateBusiness(ctx, business)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
