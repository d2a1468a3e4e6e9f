package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/taskboard/task-manager/docs"
	"github.com/taskboard/task-manager/internal/api/handler"
	"github.com/taskboard/task-manager/internal/core/service"
	"github.com/taskboard/task-manager/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskmanager"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)

	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	// --- User routes ---
	e.GET("/users/", userHandler.List)
	e.POST("/users/", userHandler.Create)

	// --- Task routes ---
	e.GET("/tasks/", taskHandler.List)
	e.POST("/tasks/", taskHandler.Create)
	e.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
	e.DELETE("/tasks/:id", taskHandler.Delete)

	// --- Liveness / readiness (no service deps) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
