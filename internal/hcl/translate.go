package hcl

import (
	"encoding/json"
	"fmt"

	"github.com/vk/skillflow/internal/config"
	"github.com/vk/skillflow/internal/schema"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// translateStep converts the HCL-specific step schema into the agnostic
// model. The params expression is evaluated statically; workflow files carry
// no variables, so a reference to anything fails here rather than at plan
// time.
func translateStep(s *schema.Step) (*config.Step, error) {
	params, err := translateParams(s)
	if err != nil {
		return nil, err
	}

	return &config.Step{
		Name:      s.Name,
		Skill:     s.Skill,
		Params:    params,
		DependsOn: s.DependsOn,
	}, nil
}

// translateParams evaluates a step's params expression and converts the
// resulting cty value into the opaque Go representation the engine passes
// through untouched.
func translateParams(s *schema.Step) (map[string]any, error) {
	if s.Params == nil {
		return nil, nil
	}

	val, diags := s.Params.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid params for step %q: %w", s.Name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("params for step %q must be an object, got %s", s.Name, val.Type().FriendlyName())
	}

	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, fmt.Errorf("cannot convert params for step %q: %w", s.Name, err)
	}

	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("cannot convert params for step %q: %w", s.Name, err)
	}
	return params, nil
}
