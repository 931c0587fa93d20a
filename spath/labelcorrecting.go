package spath

import (
	"fmt"

	"github.com/voskreal/digraph/core"
)

// LabelCorrecting computes, for every vertex, the length of the path from
// root found by queue-driven breadth-first relaxation.
//
// Distances start at core.Infinity, root at zero. Each dequeued vertex u
// relaxes its outgoing edges; any target whose distance improves is
// re-enqueued, so a vertex may be expanded more than once. The returned
// vector equals true shortest distances only for tree/DAG-like expansion
// (see the package doc); unreached vertices keep the Infinity sentinel.
//
// Integer W has no true infinity: path sums that approach core.Infinity[W]()
// wrap around in dist[u] + w and corrupt the comparison. Keep total path
// weights below the sentinel by at least the largest edge weight.
//
// Returns ErrNilGraph for a nil graph and ErrRootOutOfRange for an invalid
// root. The graph is never mutated.
// Complexity: O(V + E) on trees/DAGs
func LabelCorrecting[W core.Weight](g *core.Digraph[W], root int) ([]W, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if root < 0 || root >= g.Order() {
		return nil, fmt.Errorf("%w: root %d on %d vertices", ErrRootOutOfRange, root, g.Order())
	}

	inf := g.Infinity()
	dist := make([]W, g.Order())
	for v := range dist {
		dist[v] = inf
	}
	var zero W
	dist[root] = zero

	queue := make([]int, 0, g.Order())
	queue = append(queue, root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, w := range g.Neighbors(u) {
			// dist[u] is finite here: u was only enqueued after an improvement.
			if next := dist[u] + w; next < dist[v] {
				dist[v] = next
				queue = append(queue, v)
			}
		}
	}

	return dist, nil
}
