package repository

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	GetByAssignee(ctx context.Context, personID string) ([]*domain.Task, error)
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.Task, error)
}
