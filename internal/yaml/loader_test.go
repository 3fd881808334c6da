package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("parses steps with params and dependencies", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "workflow.yaml", `
steps:
  - id: collect
    skill: accounting.collect
    params:
      period: 2026-08
  - id: reconcile
    skill: accounting.reconcile
    depends_on: [collect]
`)

		wf, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		require.Len(t, wf.Steps, 2)

		assert.Equal(t, "collect", wf.Steps[0].Name)
		assert.Equal(t, "accounting.collect", wf.Steps[0].Skill)
		assert.Equal(t, "2026-08", wf.Steps[0].Params["period"])
		assert.Equal(t, []string{"collect"}, wf.Steps[1].DependsOn)
	})

	t.Run("accepts both yaml and yml extensions", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", "steps:\n  - id: a\n")
		writeFile(t, dir, "b.yml", "steps:\n  - id: b\n")

		wf, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		assert.Len(t, wf.Steps, 2)
	})

	t.Run("directory without workflow files yields empty workflow", func(t *testing.T) {
		wf, err := NewLoader().Load(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, wf.Steps)
	})

	t.Run("malformed document is reported with the file name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "broken.yaml", "steps: [unclosed\n")

		_, err := NewLoader().Load(ctx, dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "broken.yaml")
	})
}
