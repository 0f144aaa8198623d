package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type taskService struct {
	taskRepo     repository.TaskRepository
	businessRepo repository.BusinessRepository
}

func NewTaskService(taskRepo repository.TaskRepository, businessRepo repository.BusinessRepository) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		businessRepo: businessRepo,
	}
}

func (s *taskService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	switch {
	case task.BusinessID == "":
		return nil, domain.ErrUnauthorized
	case task.Name == "":
		return nil, domain.NewInvalidRequestError("name is required")
	case !task.Importance.Valid():
		return nil, domain.NewInvalidRequestError("importance must be low, medium or high")
	case task.Description == "":
		return nil, domain.NewInvalidRequestError("description is required")
	case len(task.AssignedTo) == 0:
		return nil, domain.NewInvalidRequestError("at least one assignee is required")
	case task.DueDate.IsZero():
		return nil, domain.NewInvalidRequestError("due date is required")
	}

	// Assignees are intentionally not checked against the business's job
	// teams; a business may assign any person.
	if _, err := s.businessRepo.GetByID(ctx, task.BusinessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domain.NewNotFoundError("business with id " + task.BusinessID)
		}
		return nil, err
	}

	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = domain.TaskNotCompleted
	}
	if !task.Status.Valid() {
		return nil, domain.NewInvalidRequestError("status must be not completed, pending or completed")
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("assigned person")
		}
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, task.ID)
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if taskID == "" {
		return nil, domain.NewInvalidRequestError("task id is required")
	}
	if !status.Valid() {
		return nil, domain.NewInvalidRequestError("status must be not completed, pending or completed")
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domain.NewNotFoundError("task with id " + taskID)
		}
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *taskService) TasksForPerson(ctx context.Context, personID string) ([]*domain.Task, error) {
	if personID == "" {
		return nil, domain.NewInvalidRequestError("person id is required")
	}
	return s.taskRepo.GetByAssignee(ctx, personID)
}

func (s *taskService) TasksForBusiness(ctx context.Context, businessID string) ([]*domain.Task, error) {
	if businessID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.taskRepo.GetByBusiness(ctx, businessID)
}
