// Package engine exposes the two resolution entry points as always-return
// envelope contracts. Both are stateless: every call rebuilds its graph from
// the caller's inputs and retains no reference afterward.
package engine

import (
	"context"
	"errors"

	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/dag"
	"github.com/vk/skillflow/internal/task"
)

// ResolveExecutionPlan builds a dependency graph from the task list and
// returns a deterministic layered execution plan. A cyclic workflow yields an
// error envelope with HasCycles set; malformed input yields a plain error
// envelope. The call never returns a partial plan.
func ResolveExecutionPlan(ctx context.Context, tasks []task.Task) PlanResult {
	g, err := dag.Build(ctx, tasks)
	if err != nil {
		return planError(ctx, err)
	}

	plan, err := g.Plan(ctx)
	if err != nil {
		return planError(ctx, err)
	}

	return PlanResult{
		Status:         StatusOK,
		ExecutionOrder: plan.ExecutionOrder,
		ParallelGroups: plan.ParallelGroups,
		Timestamp:      now(),
	}
}

// ResolveReadySteps computes which workflow steps are ready now, which are
// blocked and on what, and overall progress, given the caller-owned completed
// set. Callers advancing the same workflow's completed set from multiple
// goroutines must serialize their updates between calls.
func ResolveReadySteps(ctx context.Context, steps []task.Task, completed []string) ReadinessResult {
	report, err := dag.Resolve(ctx, steps, completed)
	if err != nil {
		ctxlog.FromContext(ctx).Error("Readiness resolution failed.", "error", err)
		return ReadinessResult{
			Status:       StatusError,
			NextSteps:    []task.Task{},
			BlockedSteps: []dag.BlockedStep{},
			Completed:    []string{},
			Message:      err.Error(),
			Timestamp:    now(),
		}
	}

	return ReadinessResult{
		Status:           StatusOK,
		NextSteps:        report.NextSteps,
		BlockedSteps:     report.BlockedSteps,
		Completed:        report.Completed,
		ProgressPct:      report.ProgressPct,
		WorkflowComplete: report.WorkflowComplete,
		Timestamp:        now(),
	}
}

// planError converts a typed graph error into the plan error envelope.
func planError(ctx context.Context, err error) PlanResult {
	ctxlog.FromContext(ctx).Error("Execution plan resolution failed.", "error", err)

	res := PlanResult{
		Status:         StatusError,
		ExecutionOrder: []string{},
		ParallelGroups: [][]string{},
		Message:        err.Error(),
		Timestamp:      now(),
	}
	if errors.Is(err, dag.ErrCycle) {
		res.HasCycles = true
		res.Message = cycleMessage
	}
	return res
}
