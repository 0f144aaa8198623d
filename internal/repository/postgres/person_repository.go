package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type personRepository struct {
	executor DBExecutor
}

func NewPersonRepository(db *sql.DB) *personRepository {
	return &personRepository{executor: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO persons (id, full_name, email, skills, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	_, err := r.executor.ExecContext(
		ctx,
		query,
		person.ID,
		person.FullName,
		person.Email,
		person.Skills,
		person.Location,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}

	person.CreatedAt = now
	person.UpdatedAt = nil

	return nil
}

func (r *personRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `
		SELECT id, full_name, email, skills, location, created_at, updated_at
		FROM persons
		WHERE id = $1
	`

	person := &domain.Person{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.FullName,
		&person.Email,
		&person.Skills,
		&person.Location,
		&person.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrPersonNotFound
		}
		return nil, err
	}

	if updatedAt.Valid {
		person.UpdatedAt = &updatedAt.Time
	}

	return person, nil
}

func (r *personRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Person, error) {
	if len(ids) == 0 {
		return []*domain.Person{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, full_name, email, skills, location, created_at, updated_at
		FROM persons
		WHERE id IN (%s)
		ORDER BY full_name
	`, strings.Join(placeholders, ", "))

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []*domain.Person
	for rows.Next() {
		person := &domain.Person{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&person.ID,
			&person.FullName,
			&person.Email,
			&person.Skills,
			&person.Location,
			&person.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			person.UpdatedAt = &updatedAt.Time
		}
		persons = append(persons, person)
	}

	return persons, rows.Err()
}

func (r *personRepository) Update(ctx context.Context, person *domain.Person) error {
	query := `
		UPDATE persons
		SET full_name = $2, skills = $3, location = $4, updated_at = $5
		WHERE id = $1
	`

	now := time.Now()
	result, err := r.executor.ExecContext(
		ctx,
		query,
		person.ID,
		person.FullName,
		person.Skills,
		person.Location,
		now,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	person.UpdatedAt = &now

	return nil
}
