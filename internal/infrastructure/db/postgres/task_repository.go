package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task row. The assigned_to foreign key backs up the
// service-level existence check; a violation is translated to
// domain.ErrAssignedUserNotFound so the narrow check-then-insert window
// produces the same error as the friendly pre-check.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrAssignedUserNotFound
		}
		return err
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all tasks matching every supplied filter, ordered by id.
// Absent filters (empty string, zero AssignedTo) impose no constraint.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	query := r.db.WithContext(ctx).Order("id")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != 0 {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}

	var tasks []*domain.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

// UpdateStatus overwrites the status column of a single row.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	res := r.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the row permanently.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
