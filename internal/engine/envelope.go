package engine

import (
	"time"

	"github.com/vk/skillflow/internal/dag"
	"github.com/vk/skillflow/internal/task"
)

// Status values carried by result envelopes.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// cycleMessage is the operator-facing message for a rejected cyclic workflow.
const cycleMessage = "Circular dependency detected"

// PlanResult is the envelope returned by ResolveExecutionPlan. Failures are
// reported through Status and Message, never as a Go error or panic.
type PlanResult struct {
	Status         string     `json:"status"`
	ExecutionOrder []string   `json:"execution_order"`
	ParallelGroups [][]string `json:"parallel_groups"`
	HasCycles      bool       `json:"has_cycles"`
	Message        string     `json:"message,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

// ReadinessResult is the envelope returned by ResolveReadySteps.
type ReadinessResult struct {
	Status           string            `json:"status"`
	NextSteps        []task.Task       `json:"next_steps"`
	BlockedSteps     []dag.BlockedStep `json:"blocked_steps"`
	Completed        []string          `json:"completed"`
	ProgressPct      float64           `json:"progress_pct"`
	WorkflowComplete bool              `json:"workflow_complete"`
	Message          string            `json:"message,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

// now stamps envelopes in UTC, matching the wire contract of the surrounding
// skill system.
func now() time.Time {
	return time.Now().UTC()
}
