package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/skillflow/internal/task"
)

func mkTask(id string, deps ...string) task.Task {
	return task.Task{ID: id, DependsOn: deps}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("empty task list is rejected", func(t *testing.T) {
		g, err := Build(ctx, nil)
		require.Error(t, err)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorContains(t, err, "tasks cannot be empty")
	})

	t.Run("missing task id is rejected", func(t *testing.T) {
		_, err := Build(ctx, []task.Task{mkTask("a"), {DependsOn: []string{"a"}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorContains(t, err, "task id is required")
	})

	t.Run("duplicate task id is rejected", func(t *testing.T) {
		_, err := Build(ctx, []task.Task{mkTask("a"), mkTask("b"), mkTask("a", "b")})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorContains(t, err, `duplicate task id: "a"`)
	})

	t.Run("nodes are interned in canonical order", func(t *testing.T) {
		g, err := Build(ctx, []task.Task{mkTask("c"), mkTask("a"), mkTask("b", "c")})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, g.Nodes())
		assert.Equal(t, 3, g.Len())
	})

	t.Run("undeclared dependency becomes a ghost node", func(t *testing.T) {
		g, err := Build(ctx, []task.Task{mkTask("a", "ext")})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "ext"}, g.Nodes())
		assert.True(t, g.IsGhost("ext"))
		assert.False(t, g.IsGhost("a"))
		assert.Zero(t, g.indegree[g.index["ext"]])
		assert.Equal(t, 1, g.indegree[g.index["a"]])
	})

	t.Run("repeated dependency mentions count once", func(t *testing.T) {
		g, err := Build(ctx, []task.Task{mkTask("a"), mkTask("b", "a", "a", "a")})
		require.NoError(t, err)
		assert.Equal(t, 1, g.indegree[g.index["b"]])
		assert.Equal(t, []int{g.index["b"]}, g.forward[g.index["a"]])
	})

	t.Run("input list is not mutated", func(t *testing.T) {
		tasks := []task.Task{mkTask("b", "a"), mkTask("a")}
		_, err := Build(ctx, tasks)
		require.NoError(t, err)
		assert.Equal(t, "b", tasks[0].ID)
		assert.Equal(t, []string{"a"}, tasks[0].DependsOn)
	})
}
