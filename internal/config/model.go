package config

import "github.com/vk/skillflow/internal/task"

// Workflow is the unified, format-agnostic representation of a workflow
// definition, regardless of which on-disk format it was loaded from.
type Workflow struct {
	Steps []*Step
}

// Step is the format-agnostic representation of a single workflow step.
type Step struct {
	// Name is the unique step id from the definition file.
	Name string
	// Skill names the skill the external runtime invokes for this step.
	Skill string
	// Params carries the opaque invocation arguments for the skill.
	Params map[string]any
	// DependsOn lists the step ids this step waits for.
	DependsOn []string
}

// Tasks converts the workflow into the flat task list the resolution engine
// consumes, preserving declaration order.
func (w *Workflow) Tasks() []task.Task {
	tasks := make([]task.Task, 0, len(w.Steps))
	for _, s := range w.Steps {
		tasks = append(tasks, task.Task{
			ID:        s.Name,
			DependsOn: s.DependsOn,
			SkillName: s.Skill,
			Params:    s.Params,
		})
	}
	return tasks
}
