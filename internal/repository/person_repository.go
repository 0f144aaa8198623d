package repository

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Person, error)
	Update(ctx context.Context, person *domain.Person) error
}
