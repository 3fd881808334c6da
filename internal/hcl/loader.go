package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/skillflow/internal/config"
	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/fsutil"
	"github.com/vk/skillflow/internal/schema"
)

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL workflow loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds and parses all .hcl files under the given path into a single
// Workflow model. Step blocks may be split across many files; they are
// consolidated in file walk order so dependencies can span files.
func (l *Loader) Load(ctx context.Context, path string) (*config.Workflow, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workflow definition from path.", "path", path, "format", "hcl")

	files, err := fsutil.FindFilesByExtensions(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find workflow files in %s: %w", path, err)
	}

	workflow := &config.Workflow{}
	if len(files) == 0 {
		logger.Warn("No .hcl workflow files found in path, returning empty workflow.", "path", path)
		return workflow, nil
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		steps, err := l.loadFile(file, parser)
		if err != nil {
			return nil, err
		}
		workflow.Steps = append(workflow.Steps, steps...)
	}

	logger.Debug("Workflow definition loaded.", "files", len(files), "steps", len(workflow.Steps))
	return workflow, nil
}

// loadFile parses a single HCL file and returns the steps found within it.
func (l *Loader) loadFile(filePath string, parser *hclparse.Parser) ([]*config.Step, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse workflow file %s: %w", filePath, diags)
	}

	var parsed schema.WorkflowFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode workflow file %s: %w", filePath, diags)
	}

	steps := make([]*config.Step, 0, len(parsed.Steps))
	for _, s := range parsed.Steps {
		step, err := translateStep(s)
		if err != nil {
			return nil, fmt.Errorf("error in workflow file %s: %w", filePath, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
