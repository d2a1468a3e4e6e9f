package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []*domain.User // insertion order, ids are 1-based positions
	createErr error          // if set, Create returns this error
	listErr   error          // if set, List returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *u
	clone.ID = len(r.users) + 1
	r.users = append(r.users, &clone)
	u.ID = clone.ID
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func validUserInput(email string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:  "Ann",
		Role:  "manager",
		Email: email,
	}
}

// ---------------------------------------------------------------------------
// CreateUser tests
// ---------------------------------------------------------------------------

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.CreateUser(context.Background(), validUserInput("ann@x.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID != 1 {
		t.Errorf("expected store-assigned id 1, got %d", user.ID)
	}
	if user.Name != "Ann" || user.Role != domain.RoleManager || user.Email != "ann@x.com" {
		t.Errorf("unexpected stored user: %+v", user)
	}
	if user.Phone != nil {
		t.Errorf("phone not provided, expected nil, got %v", *user.Phone)
	}
}

func TestUserService_Create_WithPhone(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	phone := "+1234567890"
	input := validUserInput("ann@x.com")
	input.Phone = &phone

	user, err := svc.CreateUser(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Phone == nil || *user.Phone != phone {
		t.Errorf("expected phone %q, got %v", phone, user.Phone)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	input := validUserInput("ann@x.com")
	input.Role = "intern"

	_, err := svc.CreateUser(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Errorf("rejected create must not persist, store has %d users", len(repo.users))
	}
}

func TestUserService_Create_EveryRoleAccepted(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	for i, role := range []string{"admin", "manager", "team member"} {
		input := validUserInput("user" + role + "@x.com")
		input.Role = role
		if _, err := svc.CreateUser(context.Background(), input); err != nil {
			t.Errorf("role %q must be accepted, got %v", role, err)
		}
		if len(repo.users) != i+1 {
			t.Fatalf("expected %d stored users, got %d", i+1, len(repo.users))
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.CreateUser(context.Background(), validUserInput("ann@x.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input := validUserInput("ann@x.com")
	input.Name = "Other Ann"
	_, err := svc.CreateUser(context.Background(), input)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("duplicate create must not persist, store has %d users", len(repo.users))
	}
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewUserService(repo, discardLogger)

	_, err := svc.CreateUser(context.Background(), validUserInput("ann@x.com"))
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// ListUsers tests
// ---------------------------------------------------------------------------

func TestUserService_List_Empty(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty list, got %d users", len(users))
	}
}

func TestUserService_List_InsertionOrder(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := svc.CreateUser(context.Background(), validUserInput(email)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, u := range users {
		if u.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, u.ID)
		}
	}
}

func TestUserService_List_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.listErr = errors.New("db unavailable")
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.ListUsers(context.Background()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}
