package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtensions(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))

	for _, name := range []string{"a.hcl", "b.yaml", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(sub, "d.yml"), nil, 0600))

	t.Run("single extension", func(t *testing.T) {
		files, err := FindFilesByExtensions(dir, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, files)
	})

	t.Run("multiple extensions recurse into subdirectories", func(t *testing.T) {
		files, err := FindFilesByExtensions(dir, ".yaml", ".yml")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "b.yaml"),
			filepath.Join(sub, "d.yml"),
		}, files)
	})

	t.Run("root may be a single file", func(t *testing.T) {
		files, err := FindFilesByExtensions(filepath.Join(dir, "a.hcl"), ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("missing path returns an error", func(t *testing.T) {
		_, err := FindFilesByExtensions(filepath.Join(dir, "does-not-exist"), ".hcl")
		assert.Error(t, err)
	})
}
