package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonHandler(t *testing.T, wantMethod, wantPath string, status int, body any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != wantMethod || r.URL.Path != wantPath {
			t.Errorf("unexpected request: %s %s, want %s %s", r.Method, r.URL.Path, wantMethod, wantPath)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

// ---------------------------------------------------------------------------
// Success paths
// ---------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/", http.StatusOK,
		map[string]string{"message": "Welcome to the Task API"}))
	defer srv.Close()

	msg, err := New(srv.URL).Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Welcome to the Task API" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestCreateUser(t *testing.T) {
	var received CreateUserRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(User{ID: 1, Name: received.Name, Role: received.Role, Email: received.Profile.Email})
	}))
	defer srv.Close()

	user, err := New(srv.URL).CreateUser(context.Background(), CreateUserRequest{
		Name:    "Ann",
		Role:    "manager",
		Profile: Profile{Email: "ann@x.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "ann@x.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if received.Profile.Email != "ann@x.com" {
		t.Errorf("profile not sent nested: %+v", received)
	}
}

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/users/", http.StatusOK,
		[]User{{ID: 1, Name: "Ann", Role: "manager", Email: "ann@x.com"}}))
	defer srv.Close()

	users, err := New(srv.URL).ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Ann" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestListTasks_QueryEncoding(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]Task{})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListTasks(context.Background(), TaskFilter{
		Status:     StatusPending,
		Priority:   "high",
		AssignedTo: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := query["status"]; len(got) != 1 || got[0] != "pending" {
		t.Errorf("status param: %v", got)
	}
	if got := query["priority"]; len(got) != 1 || got[0] != "high" {
		t.Errorf("priority param: %v", got)
	}
	if got := query["assigned_to"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("assigned_to param: %v", got)
	}
}

func TestListTasks_ZeroFilterSendsNoParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Task{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).ListTasks(context.Background(), TaskFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/tasks/7/status" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		status := r.URL.Query().Get("status_update")
		if status != StatusCompleted {
			t.Errorf("status_update param: %q", status)
		}
		_ = json.NewEncoder(w).Encode(Task{ID: 7, Title: "Ship release", Priority: "high", Status: status})
	}))
	defer srv.Close()

	task, err := New(srv.URL).UpdateTaskStatus(context.Background(), 7, StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != "completed" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestDeleteTask(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodDelete, "/tasks/3", http.StatusOK,
		DeleteTaskResult{Message: "Task deleted successfully", TaskID: 3}))
	defer srv.Close()

	res, err := New(srv.URL).DeleteTask(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TaskID != 3 || res.Message != "Task deleted successfully" {
		t.Errorf("unexpected result: %+v", res)
	}
}

// ---------------------------------------------------------------------------
// Failure modes
// ---------------------------------------------------------------------------

func TestAPIError_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodPost, "/users/", http.StatusBadRequest,
		map[string]string{"error": "Email already exists"}))
	defer srv.Close()

	_, err := New(srv.URL).CreateUser(context.Background(), CreateUserRequest{
		Name: "Ann", Role: "manager", Profile: Profile{Email: "ann@x.com"},
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status code: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Email already exists" {
		t.Errorf("message: %q", apiErr.Message)
	}
}

func TestAPIError_NotFound(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodDelete, "/tasks/99", http.StatusNotFound,
		map[string]string{"error": "Task not found"}))
	defer srv.Close()

	_, err := New(srv.URL).DeleteTask(context.Background(), 99)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Task not found" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestConnectivityError_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := New(srv.URL).ListUsers(context.Background())
	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectivityError, got %T: %v", err, err)
	}
	if connErr.Unwrap() == nil {
		t.Error("expected wrapped transport error")
	}
}

func TestConnectivityError_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/users/", http.StatusOK, []User{}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).ListUsers(ctx)
	var connErr *ConnectivityError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected *ConnectivityError, got %T: %v", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}
