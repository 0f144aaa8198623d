package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *jobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	j.id, j.company_id, b.name, j.name, j.description, j.skills, j.location,
	j.employment_type, j.number_of_positions, j.created_at, j.updated_at`

func scanJob(scanner interface{ Scan(dest ...any) error }) (*domain.Job, error) {
	job := &domain.Job{}
	var updatedAt sql.NullTime
	err := scanner.Scan(
		&job.ID,
		&job.CompanyID,
		&job.CompanyName,
		&job.Name,
		&job.Description,
		&job.Skills,
		&job.Location,
		&job.EmploymentType,
		&job.NumberOfPositions,
		&job.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		job.UpdatedAt = &updatedAt.Time
	}
	return job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO jobs (id, company_id, name, description, skills, location,
			employment_type, number_of_positions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	now := time.Now()
	_, err = tx.ExecContext(
		ctx,
		query,
		job.ID,
		job.CompanyID,
		job.Name,
		job.Description,
		job.Skills,
		job.Location,
		string(job.EmploymentType),
		job.NumberOfPositions,
		now,
	)
	if err != nil {
		return err
	}

	for _, personID := range job.AssignedTo {
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO job_assignees (job_id, person_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
			job.ID, personID, now,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrPersonNotFound
			}
			return err
		}
	}

	for _, personID := range job.JobApplicants {
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO job_applicants (job_id, person_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
			job.ID, personID, now,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrPersonNotFound
			}
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	job.CreatedAt = now
	job.UpdatedAt = nil

	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN businesses b ON j.company_id = b.id
		WHERE j.id = $1
	`, jobColumns)

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrJobNotFound
		}
		return nil, err
	}

	if err := r.loadMembership(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (r *jobRepository) loadMembership(ctx context.Context, job *domain.Job) error {
	assignees, err := r.membershipIDs(ctx, "job_assignees", job.ID)
	if err != nil {
		return err
	}
	applicants, err := r.membershipIDs(ctx, "job_applicants", job.ID)
	if err != nil {
		return err
	}
	job.AssignedTo = assignees
	job.JobApplicants = applicants
	return nil
}

func (r *jobRepository) membershipIDs(ctx context.Context, table, jobID string) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT person_id FROM %s WHERE job_id = $1 ORDER BY created_at",
		table,
	)

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var personID string
		if err := rows.Scan(&personID); err != nil {
			return nil, err
		}
		ids = append(ids, personID)
	}

	return ids, rows.Err()
}

func (r *jobRepository) GetAll(ctx context.Context) ([]*domain.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN businesses b ON j.company_id = b.id
		ORDER BY j.created_at, j.id
	`, jobColumns)

	return r.queryJobs(ctx, query)
}

func (r *jobRepository) GetByCompany(ctx context.Context, businessID string) ([]*domain.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN businesses b ON j.company_id = b.id
		WHERE j.company_id = $1
		ORDER BY j.created_at, j.id
	`, jobColumns)

	return r.queryJobs(ctx, query, businessID)
}

// likePattern wraps a token for a substring ILIKE match, escaping the LIKE
// metacharacters so tokens cannot widen the filter.
func likePattern(token string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(token)
	return "%" + escaped + "%"
}

func (r *jobRepository) FindMatching(ctx context.Context, personID string, tokens []string) ([]*domain.Job, error) {
	if len(tokens) == 0 {
		return []*domain.Job{}, nil
	}

	conditions := make([]string, len(tokens))
	args := make([]any, 0, len(tokens)+1)
	args = append(args, personID)
	for i, token := range tokens {
		conditions[i] = fmt.Sprintf("j.skills ILIKE $%d", i+2)
		args = append(args, likePattern(token))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN businesses b ON j.company_id = b.id
		WHERE NOT EXISTS (
			SELECT 1 FROM job_assignees a
			WHERE a.job_id = j.id AND a.person_id = $1
		)
		AND (%s)
		ORDER BY j.created_at, j.id
	`, jobColumns, strings.Join(conditions, " OR "))

	return r.queryJobs(ctx, query, args...)
}

func (r *jobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, job := range jobs {
		if err := r.loadMembership(ctx, job); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// AddApplicant inserts the person into the applicant set unless they are
// already an assignee. The assignee guard runs inside the insert statement,
// so a concurrent promotion cannot leave the person in both sets.
func (r *jobRepository) AddApplicant(ctx context.Context, jobID, personID string) (bool, error) {
	query := `
		INSERT INTO job_applicants (job_id, person_id, created_at)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM job_assignees
			WHERE job_id = $1 AND person_id = $2
		)
		ON CONFLICT DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, jobID, personID, time.Now())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, repository.ErrPersonNotFound
		}
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected > 0 {
		return true, nil
	}

	// Zero rows means either the conflict clause fired (already applied) or
	// the assignee guard blocked the insert.
	var assigned bool
	err = r.db.QueryRowContext(
		ctx,
		"SELECT EXISTS (SELECT 1 FROM job_assignees WHERE job_id = $1 AND person_id = $2)",
		jobID,
		personID,
	).Scan(&assigned)
	if err != nil {
		return false, err
	}
	if assigned {
		return false, repository.ErrPersonAssigned
	}

	return false, nil
}

func (r *jobRepository) RemoveApplicant(ctx context.Context, jobID, personID string) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		"DELETE FROM job_applicants WHERE job_id = $1 AND person_id = $2",
		jobID,
		personID,
	)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *jobRepository) PromoteApplicant(ctx context.Context, jobID, personID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		"DELETE FROM job_applicants WHERE job_id = $1 AND person_id = $2",
		jobID,
		personID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO job_assignees (job_id, person_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		jobID,
		personID,
		time.Now(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrPersonNotFound
		}
		return err
	}

	return tx.Commit()
}

func (r *jobRepository) AssignedPersonsByCompany(ctx context.Context, businessID string) ([]*domain.Person, error) {
	query := `
		SELECT DISTINCT p.id, p.full_name, p.email, p.skills, p.location, p.created_at, p.updated_at
		FROM job_assignees a
		JOIN jobs j ON a.job_id = j.id
		JOIN persons p ON a.person_id = p.id
		WHERE j.company_id = $1
		ORDER BY p.full_name
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := []*domain.Person{}
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
