package handler

// errorResponse documents the standard error envelope in the swagger output;
// the actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,capitalized"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority"    validate:"required,oneof=low medium high"`
	Status      string `json:"status"      validate:"required"`
	AssignedTo  *int   `json:"assigned_to"`
}

type taskResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  *int   `json:"assigned_to"`
}

// deleteTaskResponse confirms a permanent removal.
type deleteTaskResponse struct {
	Message string `json:"message"`
	TaskID  int    `json:"task_id"`
}
