package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
	TasksForPerson(ctx context.Context, personID string) ([]*domain.Task, error)
	TasksForBusiness(ctx context.Context, businessID string) ([]*domain.Task, error)
}
