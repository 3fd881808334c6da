package dag

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the closed error taxonomy. ErrValidation marks a
// caller-correctable input problem; ErrCycle marks a structurally invalid
// workflow definition that must be rejected as a whole.
var (
	ErrValidation = errors.New("invalid workflow definition")
	ErrCycle      = errors.New("circular dependency detected")
)

// GraphError wraps deterministic graph validation and ordering failures.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &GraphError{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

func cyclef(format string, args ...any) error {
	return &GraphError{Kind: ErrCycle, Msg: fmt.Sprintf(format, args...)}
}
