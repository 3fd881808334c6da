package dag

import (
	"context"
	"sort"
	"strings"

	"github.com/vk/skillflow/internal/ctxlog"
)

// Plan is a full execution plan for a graph: a topological order partitioned
// into layers whose members have no dependency relationship with each other
// and may be dispatched concurrently by an external executor.
//
// The concatenation of ParallelGroups, in emission order, equals
// ExecutionOrder exactly.
type Plan struct {
	ExecutionOrder []string
	ParallelGroups [][]string
}

// Plan computes the layered topological order of the graph using Kahn's
// algorithm. Within each layer, nodes are emitted in lexicographic id order,
// so repeated invocations on the same logical graph produce identical output
// regardless of how the input task list was ordered.
//
// If the graph contains a cycle the call fails with ErrCycle and no partial
// plan is returned.
func (g *Graph) Plan(ctx context.Context) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	// Indegrees are consumed during the walk; work on a copy so the graph
	// stays reusable.
	indegree := make([]int, len(g.indegree))
	copy(indegree, g.indegree)

	frontier := make([]int, 0, len(g.ids))
	for i, d := range indegree {
		if d == 0 {
			frontier = append(frontier, i)
		}
	}

	order := make([]string, 0, len(g.ids))
	groups := make([][]string, 0)

	for len(frontier) > 0 {
		// Canonical index order is lexicographic id order.
		sort.Ints(frontier)

		group := make([]string, 0, len(frontier))
		next := make([]int, 0)
		for _, u := range frontier {
			group = append(group, g.ids[u])
			order = append(order, g.ids[u])
			for _, v := range g.forward[u] {
				indegree[v]--
				if indegree[v] == 0 {
					next = append(next, v)
				}
			}
		}
		groups = append(groups, group)
		frontier = next
	}

	if len(order) != len(g.ids) {
		stuck := g.unemitted(order)
		logger.Warn("Plan: cycle detected, rejecting workflow definition.",
			"emitted", len(order), "node_count", len(g.ids), "unemitted", stuck)
		return nil, cyclef("unresolvable tasks: %s", strings.Join(stuck, ", "))
	}

	logger.Debug("Plan: layered topological order computed.",
		"node_count", len(order), "layer_count", len(groups))
	return &Plan{ExecutionOrder: order, ParallelGroups: groups}, nil
}

// unemitted returns, in canonical order, the ids that never reached indegree
// zero. Every one of them participates in, or depends on, a cycle.
func (g *Graph) unemitted(order []string) []string {
	emitted := make(map[string]struct{}, len(order))
	for _, id := range order {
		emitted[id] = struct{}{}
	}
	var stuck []string
	for _, id := range g.ids {
		if _, ok := emitted[id]; !ok {
			stuck = append(stuck, id)
		}
	}
	return stuck
}
