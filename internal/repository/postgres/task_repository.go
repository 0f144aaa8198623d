package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/careerhive/jobmatch/internal/domain"
	"github.com/careerhive/jobmatch/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tasks (id, business_id, name, importance, description, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	_, err = tx.ExecContext(
		ctx,
		query,
		task.ID,
		task.BusinessID,
		task.Name,
		string(task.Importance),
		task.Description,
		task.DueDate,
		string(task.Status),
		now,
	)
	if err != nil {
		return err
	}

	for _, personID := range task.AssignedTo {
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO task_assignees (task_id, person_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
			task.ID, personID, now,
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

	task.CreatedAt = now
	task.UpdatedAt = nil

	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `
		SELECT id, business_id, name, importance, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTaskNotFound
		}
		return nil, err
	}

	assignees, err := r.assigneeIDs(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	task.AssignedTo = assignees

	return task, nil
}

func scanTask(scanner interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	task := &domain.Task{}
	var updatedAt sql.NullTime
	err := scanner.Scan(
		&task.ID,
		&task.BusinessID,
		&task.Name,
		&task.Importance,
		&task.Description,
		&task.DueDate,
		&task.Status,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		task.UpdatedAt = &updatedAt.Time
	}
	return task, nil
}

func (r *taskRepository) assigneeIDs(ctx context.Context, taskID string) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT person_id FROM task_assignees WHERE task_id = $1 ORDER BY created_at",
		taskID,
	)
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

func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	query := `
		UPDATE tasks
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, string(status), time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) GetByAssignee(ctx context.Context, personID string) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.business_id, t.name, t.importance, t.description, t.due_date, t.status, t.created_at, t.updated_at
		FROM task_assignees ta
		JOIN tasks t ON ta.task_id = t.id
		WHERE ta.person_id = $1
		ORDER BY t.due_date
	`

	return r.queryTasks(ctx, query, personID)
}

func (r *taskRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Task, error) {
	query := `
		SELECT id, business_id, name, importance, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE business_id = $1
		ORDER BY due_date
	`

	return r.queryTasks(ctx, query, businessID)
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		assignees, err := r.assigneeIDs(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		task.AssignedTo = assignees
	}

	return tasks, nil
}
