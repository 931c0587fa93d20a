// File: methods.go
// Role: Edge lifecycle & queries on Digraph: AddEdge/RemoveEdge/HasEdge/
//       Weight/OutDegree/EdgeCount/Order, lazy iteration, Infinity, Clone.
// Determinism:
//   - Neighbors/Vertices follow map/index order; only String() sorts.
// Concurrency:
//   - No internal locking; see package doc.
package core

import (
	"fmt"
	"iter"
	"maps"
)

// inRange reports whether v is a valid vertex index.
func (g *Digraph[W]) inRange(v int) bool { return v >= 0 && v < len(g.adj) }

// Order returns the number of vertices.
// Complexity: O(1)
func (g *Digraph[W]) Order() int { return len(g.adj) }

// AddEdge records weight w for the directed pair (u,v), replacing any weight
// already stored for that pair (insert-or-replace policy).
// Returns ErrVertexRange if u or v lies outside [0, Order).
// Complexity: O(1) amortized
func (g *Digraph[W]) AddEdge(u, v int, w W) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d->%d on %d vertices", ErrVertexRange, u, v, len(g.adj))
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]W)
	}
	g.adj[u][v] = w

	return nil
}

// RemoveEdge deletes the edge u->v if present. Absence and out-of-range
// indices are a no-op, never an error.
// Complexity: O(1)
func (g *Digraph[W]) RemoveEdge(u, v int) {
	if g.inRange(u) && g.inRange(v) {
		delete(g.adj[u], v)
	}
}

// HasEdge reports whether the edge u->v exists. Out-of-range indices yield
// false rather than an error.
// Complexity: O(1) expected
func (g *Digraph[W]) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight stored for the edge u->v.
// Returns ErrVertexRange for out-of-range indices and ErrEdgeNotFound when
// no such edge exists.
// Complexity: O(1) expected
func (g *Digraph[W]) Weight(u, v int) (W, error) {
	var zero W
	if !g.inRange(u) || !g.inRange(v) {
		return zero, fmt.Errorf("%w: edge %d->%d on %d vertices", ErrVertexRange, u, v, len(g.adj))
	}
	w, ok := g.adj[u][v]
	if !ok {
		return zero, fmt.Errorf("%w: %d->%d", ErrEdgeNotFound, u, v)
	}

	return w, nil
}

// OutDegree returns the number of outgoing edges of u, or 0 when u is out of
// range.
// Complexity: O(1)
func (g *Digraph[W]) OutDegree(u int) int {
	if !g.inRange(u) {
		return 0
	}

	return len(g.adj[u])
}

// EdgeCount returns the total number of edges.
// Complexity: O(V)
func (g *Digraph[W]) EdgeCount() int {
	var n int
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n
}

// Neighbors returns a lazy, restartable sequence of (target, weight) pairs
// for the outgoing edges of u, in unspecified order. An out-of-range u
// yields an empty sequence.
// Complexity: O(outdegree(u)) per full pass
func (g *Digraph[W]) Neighbors(u int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		if !g.inRange(u) {
			return
		}
		for v, w := range g.adj[u] {
			if !yield(v, w) {
				return
			}
		}
	}
}

// Vertices returns a lazy sequence over all vertex indices in increasing
// order, for whole-graph iteration.
// Complexity: O(V) per full pass
func (g *Digraph[W]) Vertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range g.adj {
			if !yield(v) {
				return
			}
		}
	}
}

// Infinity returns the "no finite distance known" sentinel for W.
func (g *Digraph[W]) Infinity() W { return Infinity[W]() }

// Clone returns a deep copy of g: mutating the clone's edges never affects
// the original.
// Complexity: O(V + E)
func (g *Digraph[W]) Clone() *Digraph[W] {
	c := &Digraph[W]{adj: make([]map[int]W, len(g.adj))}
	for u, nbrs := range g.adj {
		if nbrs != nil {
			c.adj[u] = maps.Clone(nbrs)
		}
	}

	return c
}
