package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/engine"
)

// Skill names used when recording failure lessons, matching the names the
// surrounding skill system registers these resolvers under.
const (
	plannerSkill  = "task_dependency_resolver"
	resolverSkill = "workflow_engine"
)

// Run executes the requested resolution mode and writes the result envelope
// as indented JSON to the application's output writer. A non-ok envelope is
// still written before the error return, so callers always get the full
// structured result.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run started.", "mode", cfg.Mode)

	tasks := a.workflow.Tasks()

	var envelope any
	var skill, failure string

	switch cfg.Mode {
	case ModeStatus:
		skill = resolverSkill
		res := engine.ResolveReadySteps(ctx, tasks, cfg.Completed)
		if res.Status == engine.StatusError {
			failure = res.Message
		}
		envelope = res
	default: // ModePlan, enforced by NewConfig
		skill = plannerSkill
		res := engine.ResolveExecutionPlan(ctx, tasks)
		if res.Status == engine.StatusError {
			failure = res.Message
		}
		envelope = res
	}

	if failure != "" && a.lessons != nil {
		if err := a.lessons.Record(ctx, skill, failure); err != nil {
			// The lesson is operator convenience; a sink failure must not
			// mask the resolution result.
			logger.Warn("Failed to record lesson.", "error", err)
		}
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("failed to write result envelope: %w", err)
	}

	if failure != "" {
		return fmt.Errorf("%s: %s", skill, failure)
	}

	logger.Debug("App.Run finished.")
	return nil
}
