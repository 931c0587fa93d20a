package treecheck

import (
	"fmt"

	"github.com/voskreal/digraph/core"
)

// walker encapsulates mutable traversal state for one verification run.
type walker[W core.Weight] struct {
	graph  *core.Digraph[W]
	marked []bool
	queue  []int
}

// IsTreePlusIsolated reports whether the subgraph reachable from root forms
// a tree (every reachable vertex discovered exactly once) and every vertex
// not reached from root is isolated (has no outgoing edges).
//
// Returns ErrNilGraph for a nil graph and ErrRootOutOfRange when root is not
// a valid vertex index. The graph is never mutated.
// Complexity: O(V + E)
func IsTreePlusIsolated[W core.Weight](g *core.Digraph[W], root int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if root < 0 || root >= g.Order() {
		return false, fmt.Errorf("%w: root %d on %d vertices", ErrRootOutOfRange, root, g.Order())
	}

	w := &walker[W]{
		graph:  g,
		marked: make([]bool, g.Order()),
		queue:  make([]int, 0, g.Order()),
	}
	w.enqueue(root)

	return w.traverse() && w.isolated(), nil
}

// enqueue marks v discovered and adds it to the queue.
func (w *walker[W]) enqueue(v int) {
	w.marked[v] = true
	w.queue = append(w.queue, v)
}

// traverse processes the queue until empty and reports whether the reachable
// subgraph is tree-shaped. Seeing an already-marked target means a cycle or
// a second in-edge, so the run aborts immediately.
func (w *walker[W]) traverse() bool {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for v := range w.graph.Neighbors(u) {
			if w.marked[v] {
				return false
			}
			w.enqueue(v)
		}
	}

	return true
}

// isolated scans all vertices and reports whether every unmarked one has no
// outgoing edges.
func (w *walker[W]) isolated() bool {
	for v := range w.graph.Vertices() {
		if !w.marked[v] && w.graph.OutDegree(v) > 0 {
			return false
		}
	}

	return true
}
