package service

import (
	"context"

	"github.com/careerhive/jobmatch/internal/domain"
)

// AccountService covers signup and self-service profile updates. Credential
// handling and sessions live in an external identity layer.
type AccountService interface {
	CreatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error)
	CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error)
	UpdatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error)
	GetPerson(ctx context.Context, id string) (*domain.Person, error)
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
	Businesses(ctx context.Context) ([]*domain.Business, error)
}
