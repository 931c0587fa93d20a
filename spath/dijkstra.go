package spath

import (
	"container/heap"
	"fmt"

	"github.com/voskreal/digraph/core"
)

// Dijkstra computes true shortest distances from source to every vertex of
// g, which must have non-negative edge weights.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v, or
//     core.Infinity[W]() when v is unreachable.
//   - prev: prev[v] is the predecessor of v on a shortest path, or
//     NoPredecessor for the source and for unreached vertices.
//   - err:  ErrNilGraph, ErrRootOutOfRange, or ErrNegativeWeight.
//
// All edges are scanned up front so a negative weight fails fast before any
// relaxation. The heap uses the lazy decrease-key pattern: improvements push
// duplicate entries, and stale entries are skipped when popped.
// Complexity: O((V + E) log V) time, O(V + E) space
func Dijkstra[W core.Weight](g *core.Digraph[W], source int) ([]W, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source < 0 || source >= g.Order() {
		return nil, nil, fmt.Errorf("%w: source %d on %d vertices", ErrRootOutOfRange, source, g.Order())
	}

	var zero W
	for u := range g.Vertices() {
		for v, w := range g.Neighbors(u) {
			if w < zero {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	r := &runner[W]{
		g:       g,
		dist:    make([]W, g.Order()),
		prev:    make([]int, g.Order()),
		visited: make([]bool, g.Order()),
		pq:      make(nodePQ[W], 0, g.Order()),
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W core.Weight] struct {
	g       *core.Digraph[W]
	dist    []W
	prev    []int
	visited []bool
	pq      nodePQ[W]
}

// init seeds distances with the Infinity sentinel, predecessors with
// NoPredecessor, and pushes the source at distance zero.
func (r *runner[W]) init(source int) {
	inf := r.g.Infinity()
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = NoPredecessor
	}
	var zero W
	r.dist[source] = zero

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem[W]{vertex: source, dist: zero})
}

// process extracts vertices in increasing distance order and relaxes their
// outgoing edges until the heap is exhausted.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])
		u := item.vertex
		if r.visited[u] {
			// Stale entry left behind by lazy decrease-key.
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve the distance of every neighbour of u; each
// strict improvement records u as predecessor and pushes a fresh heap entry.
func (r *runner[W]) relax(u int) {
	for v, w := range r.g.Neighbors(u) {
		next := r.dist[u] + w
		if next >= r.dist[v] {
			continue
		}
		r.dist[v] = next
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem[W]{vertex: v, dist: next})
	}
}

// nodeItem pairs a vertex with its candidate distance inside the heap.
type nodeItem[W core.Weight] struct {
	vertex int
	dist   W
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ[W core.Weight] []nodeItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(nodeItem[W])) }

func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
