// Package metrics defines and registers all custom Prometheus metrics for the
// task manager API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto and are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskmanager"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts successfully created users.
// Label:
//   - role: "admin", "manager", or "team member"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts successfully created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// TaskStatusUpdatesTotal counts status overwrites applied to tasks.
var TaskStatusUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_status_updates_total",
		Help:      "Total number of task status updates applied.",
	},
)

// TasksDeletedTotal counts permanently deleted tasks.
var TasksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_deleted_total",
		Help:      "Total number of tasks deleted.",
	},
)
