// Package metrics defines and registers all custom Prometheus metrics for
// the task API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskapi"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned to the new account ("user" or "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts authorization denials after successful
// authentication.
// Label:
//   - reason: "not_admin" or "not_owner"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of authorization denials, by reason.",
	},
	[]string{"reason"},
)

// TasksCreatedTotal counts created tasks.
// Label:
//   - status: initial task status ("pending", "in-progress", "completed")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// ActivitiesRecordedTotal counts activity entries persisted by the
// dispatcher workers.
// Label:
//   - action: "task_created", "task_updated", or "task_deleted"
var ActivitiesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of task activity entries persisted, by action.",
	},
	[]string{"action"},
)
