package ports

import (
	"context"

	"github.com/taskboard/task-manager/internal/core/domain"
)

// ListTasksFilter carries the query parameters for listing tasks. Filters are
// conjunctive; a zero value means no constraint on that field. AssignedTo
// follows the dashboard convention of 0 as "unset".
type ListTasksFilter struct {
	Status     string
	Priority   string
	AssignedTo int
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// Create inserts the task and fills in the store-assigned id.
	Create(ctx context.Context, t *domain.Task) error
	// FindByID returns domain.ErrTaskNotFound when the id does not exist.
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	// List returns all tasks matching every supplied filter, in insertion order.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	// UpdateStatus overwrites the task's status in place.
	UpdateStatus(ctx context.Context, id int, status string) error
	// Delete removes the task permanently.
	Delete(ctx context.Context, id int) error
}
