package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/careerhive/jobmatch/internal/domain"
)

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Person, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) Update(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) GetAll(ctx context.Context) ([]*domain.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Business), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetAll(ctx context.Context) ([]*domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetByCompany(ctx context.Context, businessID string) ([]*domain.Job, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobRepository) FindMatching(ctx context.Context, personID string, tokens []string) ([]*domain.Job, error) {
	args := m.Called(ctx, personID, tokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Job), args.Error(1)
}

func (m *MockJobRepository) AddApplicant(ctx context.Context, jobID, personID string) (bool, error) {
	args := m.Called(ctx, jobID, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) RemoveApplicant(ctx context.Context, jobID, personID string) (bool, error) {
	args := m.Called(ctx, jobID, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) PromoteApplicant(ctx context.Context, jobID, personID string) error {
	args := m.Called(ctx, jobID, personID)
	return args.Error(0)
}

func (m *MockJobRepository) AssignedPersonsByCompany(ctx context.Context, businessID string) ([]*domain.Person, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByAssignee(ctx context.Context, personID string) ([]*domain.Task, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Task, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}
