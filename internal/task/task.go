// Package task defines the unit-of-work record shared by the planner and the
// readiness resolver. The engine only interprets ID and DependsOn; everything
// else is passthrough metadata owned by the external skill runtime.
package task

// Task is a single declared unit of work in a workflow definition.
type Task struct {
	// ID is the unique identifier of the task. Required, non-empty.
	ID string `json:"step_id"`
	// DependsOn lists the IDs of tasks that must complete before this one
	// becomes ready. May be empty.
	DependsOn []string `json:"depends_on,omitempty"`
	// SkillName names the skill the external runtime should invoke.
	// Opaque to the engine.
	SkillName string `json:"skill_name,omitempty"`
	// Params carries the invocation arguments for the skill.
	// Opaque to the engine.
	Params map[string]any `json:"params,omitempty"`
}
