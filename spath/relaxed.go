package spath

import (
	"fmt"

	"github.com/voskreal/digraph/core"
)

// AllEdgesRelaxed validates that a candidate distance vector is a correct
// shortest-path solution for g. Three conditions must all hold:
//
//  1. dist[source] is zero;
//  2. no edge is still relaxable: for every edge (u,v,w) with finite
//     dist[u], dist[v] <= dist[u] + w (a violated edge proves the vector is
//     not optimal);
//  3. every finite non-source distance is attained: some in-edge (u,v,w)
//     with finite dist[u] satisfies dist[v] == dist[u] + w. A claim no edge
//     witnesses is an under-estimate no actual path achieves, so the vector
//     is rejected even though condition 2 alone would let it through.
//
// Edges leaving a vertex whose distance is still Infinity impose no
// constraint, and such vertices need no witness.
//
// Integer W has no true infinity: a caller-supplied finite distance within
// one edge weight of core.Infinity[W]() makes dist[u] + w wrap around and
// flips the comparisons. Keep claimed distances below the sentinel by at
// least the largest edge weight.
//
// Returns ErrNilGraph, ErrRootOutOfRange, or ErrDistanceLength when the
// inputs themselves are malformed; the boolean is meaningful only with a nil
// error. Pure and read-only.
// Complexity: O(V + E) time, O(V) memory
func AllEdgesRelaxed[W core.Weight](dist []W, g *core.Digraph[W], source int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if source < 0 || source >= g.Order() {
		return false, fmt.Errorf("%w: source %d on %d vertices", ErrRootOutOfRange, source, g.Order())
	}
	if len(dist) != g.Order() {
		return false, fmt.Errorf("%w: len(dist)=%d, order=%d", ErrDistanceLength, len(dist), g.Order())
	}

	var zero W
	if dist[source] != zero {
		return false, nil
	}

	inf := g.Infinity()
	// witnessed[v] records that some edge (u,v,w) with finite dist[u]
	// attains dist[v] exactly.
	witnessed := make([]bool, g.Order())
	for u := range g.Vertices() {
		if dist[u] == inf {
			// An unreached origin imposes no constraint on its targets.
			continue
		}
		for v, w := range g.Neighbors(u) {
			next := dist[u] + w
			if dist[v] > next {
				return false, nil
			}
			if dist[v] == next {
				witnessed[v] = true
			}
		}
	}

	for v := range g.Vertices() {
		if v != source && dist[v] != inf && !witnessed[v] {
			return false, nil
		}
	}

	return true, nil
}
