package subgraph

import "github.com/voskreal/digraph/core"

// Of reports whether h is a subgraph of g: h is no larger than g and every
// edge of h appears in g with an identical weight.
//
// Pure and read-only over both graphs. A nil graph counts as the empty
// graph.
// Complexity: O(|E(h)|) expected
func Of[W core.Weight](h, g *core.Digraph[W]) bool {
	if h == nil {
		return true
	}
	if g == nil {
		return h.Order() == 0
	}
	if h.Order() > g.Order() {
		return false
	}

	for u := range h.Vertices() {
		for v, w := range h.Neighbors(u) {
			gw, err := g.Weight(u, v)
			if err != nil || gw != w {
				return false
			}
		}
	}

	return true
}
