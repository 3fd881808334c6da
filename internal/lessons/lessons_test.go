package lessons

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("creates file and appends lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "lessons.md")
		log := New(path)

		require.NoError(t, log.Record(ctx, "workflow_engine", "completed_steps contain unknown ids: Z"))
		require.NoError(t, log.Record(ctx, "task_dependency_resolver", "Circular dependency detected"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		require.Len(t, lines, 2)

		entry := regexp.MustCompile(`^- \[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z\] [a-z_]+: .+$`)
		for _, line := range lines {
			assert.Regexpf(t, entry, line, "malformed lesson line: %s", line)
		}
		assert.Contains(t, lines[0], "workflow_engine: completed_steps contain unknown ids: Z")
	})

	t.Run("safe for concurrent recorders", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lessons.md")
		log := New(path)

		done := make(chan struct{})
		for i := 0; i < 8; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				_ = log.Record(ctx, "workflow_engine", "race check")
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 8, strings.Count(string(data), "race check"))
	})
}
