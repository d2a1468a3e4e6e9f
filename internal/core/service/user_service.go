package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser validates the role, checks email uniqueness, and persists the
// user. The uniqueness check here exists for a friendly error message; the
// store's unique index is what actually closes the check-then-insert window.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := domain.Role(input.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("create user: %w", domain.ErrInvalidRole)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Error().Err(err).Msg("email uniqueness check failed")
		return nil, fmt.Errorf("create user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create user: %w", domain.ErrEmailExists)
	}

	user := &domain.User{
		Name:  input.Name,
		Role:  role,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", input.Role).Msg("user created")
	return user, nil
}

// ListUsers returns all users in insertion order. No filtering is supported.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
