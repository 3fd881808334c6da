package dag

import (
	"context"
	"sort"

	"github.com/vk/skillflow/internal/ctxlog"
	"github.com/vk/skillflow/internal/task"
)

// Build constructs a validated dependency graph from a flat task list.
//
// The node set is the union of all declared task ids and every id referenced
// inside a depends_on list. A referenced id that is never declared as its own
// task is registered as an external stub ("ghost") node with indegree zero.
//
// Build is a pure function: it borrows the task list for the duration of the
// call and never mutates it.
func Build(ctx context.Context, tasks []task.Task) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "task_count", len(tasks))

	declared, err := declaredIDs(tasks)
	if err != nil {
		return nil, err
	}

	// First pass: collect the full node set, ghosts included.
	nodeSet := make(map[string]struct{}, len(tasks))
	for id := range declared {
		nodeSet[id] = struct{}{}
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			nodeSet[dep] = struct{}{}
		}
	}

	ids := make([]string, 0, len(nodeSet))
	for id := range nodeSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := &Graph{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		forward:  make([][]int, len(ids)),
		indegree: make([]int, len(ids)),
		ghost:    make([]bool, len(ids)),
	}
	for i, id := range ids {
		g.index[id] = i
		if _, ok := declared[id]; !ok {
			g.ghost[i] = true
			logger.Debug("Build: registered external stub node.", "id", id)
		}
	}

	// Second pass: link edges. A task's depends_on is treated as a set, so
	// repeated mentions of the same dependency contribute a single edge.
	for _, t := range tasks {
		to := g.index[t.ID]
		seen := make(map[int]struct{}, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			from := g.index[dep]
			if _, dup := seen[from]; dup {
				continue
			}
			seen[from] = struct{}{}
			g.forward[from] = append(g.forward[from], to)
			g.indegree[to]++
		}
	}
	for i := range g.forward {
		sort.Ints(g.forward[i])
	}

	logger.Debug("Build: graph construction complete.", "node_count", len(g.ids))
	return g, nil
}

// declaredIDs validates the task records and returns the set of declared ids.
// Shared by the planner and the readiness resolver, which validate the same
// way but structure their graphs independently.
func declaredIDs(tasks []task.Task) (map[string]struct{}, error) {
	if len(tasks) == 0 {
		return nil, invalidf("tasks cannot be empty")
	}
	declared := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			return nil, invalidf("task id is required for every task")
		}
		if _, dup := declared[t.ID]; dup {
			return nil, invalidf("duplicate task id: %q", t.ID)
		}
		declared[t.ID] = struct{}{}
	}
	return declared, nil
}
