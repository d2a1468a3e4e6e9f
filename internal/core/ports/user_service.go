package ports

import (
	"context"

	"github.com/taskboard/task-manager/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user. Phone is
// optional; nil means not provided.
type CreateUserInput struct {
	Name  string
	Role  string
	Email string
	Phone *string
}

// UserService defines use-case operations for users.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
