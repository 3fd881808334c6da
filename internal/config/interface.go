package config

import "context"

// Loader is the interface for a format-specific workflow definition loader.
type Loader interface {
	// Load reads workflow definition files from a given path (a single file
	// or a directory searched recursively) and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Workflow, error)
}
