package domain

import "time"

type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskNotCompleted TaskStatus = "not completed"
	TaskPending      TaskStatus = "pending"
	TaskCompleted    TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotCompleted, TaskPending, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string
	BusinessID  string
	Name        string
	Importance  Importance
	Description string
	AssignedTo  []string
	DueDate     time.Time
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
