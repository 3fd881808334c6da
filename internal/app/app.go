package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/skillflow/internal/config"
	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/lessons"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: a loaded workflow definition, an isolated logger, and the
// optional lessons sink.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	workflow *config.Workflow
	lessons  *lessons.Log
}

// NewApp constructs the application. The workflow definition is loaded
// eagerly through the provided loader; a definition that cannot be parsed is
// a startup error, not a resolution result.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	workflow, err := loader.Load(ctx, cfg.WorkflowPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow definition: %w", err)
	}
	logger.Debug("Workflow definition loaded into unified model.", "steps", len(workflow.Steps))

	a := &App{
		outW:     outW,
		logger:   logger,
		workflow: workflow,
	}
	if cfg.LessonsPath != "" {
		a.lessons = lessons.New(cfg.LessonsPath)
	}
	return a, nil
}
