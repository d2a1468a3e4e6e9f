package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/task-manager/internal/api/metrics"
	"github.com/taskboard/task-manager/internal/core/domain"
	"github.com/taskboard/task-manager/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users/.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /users/.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details; email and phone live under profile"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse  "Email already exists"
// @Failure      422   {object}  errorResponse  "Invalid role or missing required field"
// @Router       /users/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Profile.Email,
		Phone: req.Profile.Phone,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Role:  string(u.Role),
		Email: u.Email,
		Phone: u.Phone,
	}
}
