package dag

// Graph is the interned, index-based dependency structure built from a flat
// task list. Node ids are interned into dense indices in canonical
// (lexicographic) order, so index order and id order always agree.
//
// A Graph is immutable after Build and safe for concurrent read access.
type Graph struct {
	// ids holds every node id in canonical lexicographic order.
	ids []string
	// index maps a node id to its position in ids.
	index map[string]int
	// forward maps a node index to the indices of nodes that depend on it,
	// sorted ascending.
	forward [][]int
	// indegree holds, per node index, the count of distinct dependencies.
	indegree []int
	// ghost marks nodes that appear only as dependency targets without a
	// declaration of their own. They carry no work and always have
	// indegree zero.
	ghost []bool
}

// Len returns the total number of nodes, ghost nodes included.
func (g *Graph) Len() int { return len(g.ids) }

// Nodes returns all node ids in canonical order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// IsGhost reports whether the given id exists only as a dependency target.
func (g *Graph) IsGhost(id string) bool {
	i, ok := g.index[id]
	return ok && g.ghost[i]
}
