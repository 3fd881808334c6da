package app

import (
	"errors"
	"fmt"
)

// Resolution modes selectable from the command line.
const (
	// ModePlan resolves a full layered execution plan up front.
	ModePlan = "plan"
	// ModeStatus resolves current readiness against a completed set.
	ModeStatus = "status"
)

// Workflow definition formats.
const (
	FormatAuto = "auto"
	FormatHCL  = "hcl"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkflowPath string
	Format       string
	Mode         string
	Completed    []string
	LessonsPath  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it, applying defaults where a
// field was left unset.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkflowPath == "" {
		return nil, errors.New("WorkflowPath is a required configuration field and cannot be empty")
	}

	if cfg.Mode == "" {
		cfg.Mode = ModePlan
	}
	switch cfg.Mode {
	case ModePlan, ModeStatus:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModePlan, ModeStatus)
	}

	if cfg.Format == "" {
		cfg.Format = FormatAuto
	}
	switch cfg.Format {
	case FormatAuto, FormatHCL, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be %q, %q or %q", cfg.Format, FormatAuto, FormatHCL, FormatYAML)
	}

	return &cfg, nil
}
