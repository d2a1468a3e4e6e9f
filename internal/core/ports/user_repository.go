package ports

import (
	"context"

	"github.com/taskboard/task-manager/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and fills in the store-assigned id.
	Create(ctx context.Context, u *domain.User) error
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when the id does not exist.
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
}
