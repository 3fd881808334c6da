// Package yaml implements the config.Loader interface for YAML workflow
// definition files.
package yaml

import (
	"context"
	"fmt"
	"os"

	goyaml "gopkg.in/yaml.v3"

	"github.com/vk/skillflow/internal/config"
	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/fsutil"
)

// workflowFile mirrors the on-disk YAML workflow document.
//
//	steps:
//	  - id: load_accounts
//	    skill: agent_crm.load
//	    params:
//	      region: emea
//	    depends_on: []
type workflowFile struct {
	Steps []stepEntry `yaml:"steps"`
}

type stepEntry struct {
	ID        string         `yaml:"id"`
	Skill     string         `yaml:"skill"`
	Params    map[string]any `yaml:"params"`
	DependsOn []string       `yaml:"depends_on"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML workflow loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds and parses all .yaml and .yml files under the given path into a
// single Workflow model, consolidating steps in file walk order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Workflow, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workflow definition from path.", "path", path, "format", "yaml")

	files, err := fsutil.FindFilesByExtensions(path, ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to find workflow files in %s: %w", path, err)
	}

	workflow := &config.Workflow{}
	if len(files) == 0 {
		logger.Warn("No YAML workflow files found in path, returning empty workflow.", "path", path)
		return workflow, nil
	}

	for _, file := range files {
		steps, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		workflow.Steps = append(workflow.Steps, steps...)
	}

	logger.Debug("Workflow definition loaded.", "files", len(files), "steps", len(workflow.Steps))
	return workflow, nil
}

// loadFile parses a single YAML file and returns the steps found within it.
func loadFile(filePath string) ([]*config.Step, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read workflow file %s: %w", filePath, err)
	}

	var parsed workflowFile
	if err := goyaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse workflow file %s: %w", filePath, err)
	}

	steps := make([]*config.Step, 0, len(parsed.Steps))
	for _, s := range parsed.Steps {
		steps = append(steps, &config.Step{
			Name:      s.ID,
			Skill:     s.Skill,
			Params:    s.Params,
			DependsOn: s.DependsOn,
		})
	}
	return steps, nil
}
