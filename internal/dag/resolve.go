package dag

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/task"
)

// Report describes what may run right now for a workflow, given the caller's
// externally tracked completion state.
type Report struct {
	// NextSteps lists, in declaration order, every task whose dependencies
	// are all completed. Entries carry their original passthrough metadata.
	NextSteps []task.Task
	// BlockedSteps lists, in declaration order, every task that is neither
	// completed nor ready, annotated with its unmet dependencies.
	BlockedSteps []BlockedStep
	// Completed lists the declared ids already finished, sorted
	// lexicographically.
	Completed []string
	// ProgressPct is the share of declared tasks completed, in percent,
	// rounded to two decimal places.
	ProgressPct float64
	// WorkflowComplete is true iff every declared task is completed.
	WorkflowComplete bool
}

// BlockedStep is a task waiting on one or more unmet dependencies.
type BlockedStep struct {
	StepID    string   `json:"step_id"`
	WaitingOn []string `json:"waiting_on"`
}

// Resolve computes the readiness report for a workflow from scratch. It holds
// no state between calls: the caller owns the completed set, updates it as
// the external skill runtime finishes work, and re-invokes.
//
// Every id in completed must be a declared task id; an unknown id fails with
// ErrValidation rather than being silently ignored, guarding against stale
// completion reports after a workflow definition changed.
func Resolve(ctx context.Context, steps []task.Task, completed []string) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	declared, err := declaredIDs(steps)
	if err != nil {
		return nil, err
	}

	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		done[id] = struct{}{}
	}

	var unknown []string
	for id := range done {
		if _, ok := declared[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalidf("completed_steps contain unknown ids: %s", strings.Join(unknown, ", "))
	}

	report := &Report{
		NextSteps:    make([]task.Task, 0),
		BlockedSteps: make([]BlockedStep, 0),
		Completed:    make([]string, 0, len(done)),
	}

	for _, step := range steps {
		if _, ok := done[step.ID]; ok {
			continue
		}
		waiting := unmetDeps(step.DependsOn, done)
		if len(waiting) == 0 {
			report.NextSteps = append(report.NextSteps, step)
			continue
		}
		report.BlockedSteps = append(report.BlockedSteps, BlockedStep{
			StepID:    step.ID,
			WaitingOn: waiting,
		})
	}

	for id := range done {
		report.Completed = append(report.Completed, id)
	}
	sort.Strings(report.Completed)

	report.ProgressPct = roundPct(float64(len(done)) / float64(len(declared)) * 100)
	report.WorkflowComplete = len(done) == len(declared)

	logger.Debug("Resolve: readiness report computed.",
		"ready", len(report.NextSteps),
		"blocked", len(report.BlockedSteps),
		"completed", len(report.Completed),
		"progress_pct", report.ProgressPct)
	return report, nil
}

// unmetDeps returns the subset of deps not yet completed, deduplicated and
// sorted for deterministic output.
func unmetDeps(deps []string, done map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(deps))
	var unmet []string
	for _, dep := range deps {
		if _, ok := done[dep]; ok {
			continue
		}
		if _, dup := seen[dep]; dup {
			continue
		}
		seen[dep] = struct{}{}
		unmet = append(unmet, dep)
	}
	sort.Strings(unmet)
	return unmet
}

// roundPct rounds to two decimal places.
func roundPct(v float64) float64 {
	return math.Round(v*100) / 100
}
