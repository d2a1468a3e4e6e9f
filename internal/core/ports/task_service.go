package ports

import (
	"context"

	"github.com/taskboard/task-manager/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. AssignedTo is
// optional; nil means unassigned.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
	AssignedTo  *int
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	// UpdateStatus sets a new free-form status value and returns the updated task.
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Task, error)
	// DeleteTask removes the task with the given id.
	DeleteTask(ctx context.Context, id int) error
}
