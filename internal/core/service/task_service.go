package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

type TaskService struct {
	repo     ports.TaskRepository
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, userRepo ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, userRepo: userRepo, logger: logger}
}

// CreateTask validates the title and priority, verifies the assignee exists
// when one is given, and persists the task. All checks run before the insert
// so a rejected request leaves the store untouched.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if !domain.TitleCapitalized(input.Title) {
		return nil, fmt.Errorf("create task: %w", domain.ErrTitleNotCapitalized)
	}

	priority := domain.Priority(input.Priority)
	if !priority.Valid() {
		return nil, fmt.Errorf("create task: %w", domain.ErrInvalidPriority)
	}

	if input.AssignedTo != nil {
		if _, err := s.userRepo.FindByID(ctx, *input.AssignedTo); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("create task: %w", domain.ErrAssignedUserNotFound)
			}
			s.logger.Error().Err(err).Int("user_id", *input.AssignedTo).Msg("assignee lookup failed")
			return nil, fmt.Errorf("create task: %w", err)
		}
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      input.Status,
		AssignedTo:  input.AssignedTo,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().Int("task_id", task.ID).Str("priority", input.Priority).Msg("task created")
	return task, nil
}

// ListTasks returns all tasks matching every supplied filter. Filters are
// conjunctive; empty strings and a zero AssignedTo impose no constraint.
func (s *TaskService) ListTasks(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list tasks")
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus overwrites the task's status with the given free-form value.
// No transition table is enforced and no history of the prior status is kept.
func (s *TaskService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Int("task_id", id).Msg("failed to update task status")
		return nil, fmt.Errorf("update task status: %w", err)
	}

	task.Status = status
	s.logger.Info().Int("task_id", id).Str("status", status).Msg("task status updated")
	return task, nil
}

// DeleteTask removes the task permanently. Irreversible.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("task_id", id).Msg("failed to delete task")
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info().Int("task_id", id).Msg("task deleted")
	return nil
}
