package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-manager/internal/api/metrics"
	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /tasks/ with optional conjunctive filters.
//
// @Summary      List tasks with optional filters
// @Tags         tasks
// @Produce      json
// @Param        status       query     string  false  "Exact-match status filter"
// @Param        priority     query     string  false  "Exact-match priority filter"
// @Param        assigned_to  query     int     false  "Assignee user id; 0 means no filter"
// @Success      200          {array}   taskResponse
// @Failure      422          {object}  errorResponse
// @Router       /tasks/ [get]
func (h *TaskHandler) List(c echo.Context) error {
	filter := ports.ListTasksFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	}
	if raw := c.QueryParam("assigned_to"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "assigned_to must be an integer")
		}
		filter.AssignedTo = id
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /tasks/.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      200   {object}  taskResponse
// @Failure      404   {object}  errorResponse  "Assigned user not found"
// @Failure      422   {object}  errorResponse  "Title not capitalized or priority invalid"
// @Router       /tasks/ [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(req.Priority).Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateStatus handles PATCH /tasks/:id/status. The new value arrives as the
// status_update query parameter and is not validated against any enum.
//
// @Summary      Update a task's status
// @Tags         tasks
// @Produce      json
// @Param        id             path      int     true  "Task id"
// @Param        status_update  query     string  true  "New status value (free-form)"
// @Success      200            {object}  taskResponse
// @Failure      404            {object}  errorResponse  "Task not found"
// @Failure      422            {object}  errorResponse
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	status := c.QueryParam("status_update")
	if status == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status_update is required")
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return err
	}

	metrics.TaskStatusUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  deleteTaskResponse
// @Failure      404  {object}  errorResponse  "Task not found"
// @Failure      422  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteTaskResponse{
		Message: "Task deleted successfully",
		TaskID:  id,
	})
}

func taskID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "task id must be an integer")
	}
	return id, nil
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      t.Status,
		AssignedTo:  t.AssignedTo,
	}
}
