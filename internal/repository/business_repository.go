package repository

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	GetAll(ctx context.Context) ([]*domain.Business, error)
}
