package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type businessRepository struct {
	executor DBExecutor
}

func NewBusinessRepository(db *sql.DB) *businessRepository {
	return &businessRepository{executor: db}
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	query := `
		INSERT INTO businesses (id, name, field, about, email, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err := r.executor.ExecContext(
		ctx,
		query,
		business.ID,
		business.Name,
		business.Field,
		business.About,
		business.Email,
		business.Location,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}

	business.CreatedAt = now
	business.UpdatedAt = nil

	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query := `
		SELECT id, name, field, about, email, location, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	business := &domain.Business{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&business.ID,
		&business.Name,
		&business.Field,
		&business.About,
		&business.Email,
		&business.Location,
		&business.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBusinessNotFound
		}
		return nil, err
	}

	if updatedAt.Valid {
		business.UpdatedAt = &updatedAt.Time
	}

	return business, nil
}

func (r *businessRepository) GetAll(ctx context.Context) ([]*domain.Business, error) {
	query := `
		SELECT id, name, field, about, email, location, created_at, updated_at
		FROM businesses
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		business := &domain.Business{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&business.ID,
			&business.Name,
			&business.Field,
			&business.About,
			&business.Email,
			&business.Location,
			&business.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			business.UpdatedAt = &updatedAt.Time
		}
		businesses = append(businesses, business)
	}

	return businesses, rows.Err()
}
