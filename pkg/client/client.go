// Package client is the typed Go client the dashboard uses to talk to the
// task manager API. It distinguishes transport failures (ConnectivityError)
// from rejected requests (APIError) so a UI can show "service unreachable"
// versus the server's own error message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Suggested status values offered by the dashboard. Advisory only: the API
// accepts any string at create and update time.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
	StatusCancelled  = "cancelled"
)

const defaultTimeout = 5 * time.Second

// ConnectivityError reports a transport failure reaching the API.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("api unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// User is the flattened user representation returned by the API.
type User struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// Task is the task representation returned by the API.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  *int   `json:"assigned_to"`
}

// Profile carries the input-only email/phone wrapper for user creation.
type Profile struct {
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// CreateUserRequest is the POST /users/ payload.
type CreateUserRequest struct {
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Profile Profile `json:"profile"`
}

// CreateTaskRequest is the POST /tasks/ payload.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  *int   `json:"assigned_to,omitempty"`
}

// TaskFilter carries the optional list filters. Zero values are omitted from
// the query string, matching the dashboard's 0-means-unset convention.
type TaskFilter struct {
	Status     string
	Priority   string
	AssignedTo int
}

// DeleteTaskResult confirms a deletion.
type DeleteTaskResult struct {
	Message string `json:"message"`
	TaskID  int    `json:"task_id"`
}

// Client calls the task manager API at a configurable base address with a
// fixed short timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the API at baseURL (e.g. "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithHTTPClient returns a Client using the given http.Client, for callers
// that need their own timeout or transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: hc}
}

// Health calls GET / and returns the welcome message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListUsers calls GET /users/.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/users/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser calls POST /users/.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/users/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTasks calls GET /tasks/ with the given filters.
func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	if filter.AssignedTo != 0 {
		query.Set("assigned_to", strconv.Itoa(filter.AssignedTo))
	}

	var out []Task
	if err := c.do(ctx, http.MethodGet, "/tasks/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask calls POST /tasks/.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, "/tasks/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTaskStatus calls PATCH /tasks/{id}/status with the new value in the
// status_update query parameter.
func (c *Client) UpdateTaskStatus(ctx context.Context, id int, status string) (*Task, error) {
	query := url.Values{}
	query.Set("status_update", status)

	var out Task
	path := fmt.Sprintf("/tasks/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask calls DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id int) (*DeleteTaskResult, error) {
	var out DeleteTaskResult
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response cycle. Transport failures come back as
// *ConnectivityError, non-2xx statuses as *APIError with the server's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
