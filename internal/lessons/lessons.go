// Package lessons appends skill failure notes to a markdown log for operator
// review. The resolution engine only produces structured error values; this
// sink performs the write on its behalf.
package lessons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vk/skillflow/internal/ctxlog"
)

// Log is an append-only markdown sink for failure lessons. The zero value is
// not usable; construct with New.
type Log struct {
	path string

	// mu serializes appends from concurrent resolution loops sharing one sink.
	mu sync.Mutex
}

// New creates a lessons log writing to the given file path. The file and its
// parent directory are created on first record.
func New(path string) *Log {
	return &Log{path: path}
}

// Record appends a single lesson line for the named skill:
//
//	- [2026-08-29T10:15:04Z] workflow_engine: completed_steps contain unknown ids: Z
func (l *Log) Record(ctx context.Context, skill, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lessons directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lessons log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("- [%s] %s: %s\n", time.Now().UTC().Format(time.RFC3339), skill, message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append lesson: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Lesson recorded.", "skill", skill, "path", l.path)
	return nil
}
