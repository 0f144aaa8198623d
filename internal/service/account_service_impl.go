package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type accountService struct {
	personRepo   repository.PersonRepository
	businessRepo repository.BusinessRepository
}

func NewAccountService(personRepo repository.PersonRepository, businessRepo repository.BusinessRepository) AccountService {
	return &accountService{
		personRepo:   personRepo,
		businessRepo: businessRepo,
	}
}

func (s *accountService) CreatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person.FullName == "" {
		return nil, domain.NewInvalidRequestError("full name is required")
	}
	if person.Email == "" {
		return nil, domain.NewInvalidRequestError("email is required")
	}

	person.ID = uuid.NewString()

	if err := s.personRepo.Create(ctx, person); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return person, nil
}

func (s *accountService) CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if business.Name == "" {
		return nil, domain.NewInvalidRequestError("name is required")
	}
	if business.Email == "" {
		return nil, domain.NewInvalidRequestError("email is required")
	}

	business.ID = uuid.NewString()

	if err := s.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return business, nil
}

func (s *accountService) UpdatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person.ID == "" {
		return nil, domain.NewInvalidRequestError("person id is required")
	}

	existing, err := s.personRepo.GetByID(ctx, person.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + person.ID)
		}
		return nil, err
	}

	// Omitted fields keep their stored values; only email is immutable.
	if person.FullName == "" {
		person.FullName = existing.FullName
	}
	if person.Skills == "" {
		person.Skills = existing.Skills
	}
	if person.Location == "" {
		person.Location = existing.Location
	}
	person.Email = existing.Email

	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	return s.personRepo.GetByID(ctx, person.ID)
}

func (s *accountService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domain.NewNotFoundError("person with id " + id)
		}
		return nil, err
	}
	return person, nil
}

func (s *accountService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domain.NewNotFoundError("business with id " + id)
		}
		return nil, err
	}
	return business, nil
}

func (s *accountService) Businesses(ctx context.Context) ([]*domain.Business, error) {
	return s.businessRepo.GetAll(ctx)
}
