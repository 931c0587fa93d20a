// File: format.go
// Role: Textual rendering of a Digraph.
//
// One line per vertex: "i:" followed by " (i, j)[w]" for each outgoing edge.
// Neighbours are sorted here, at the boundary only, so output is stable
// while internal storage stays order-agnostic.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the adjacency structure, one line per vertex in increasing
// order, neighbours sorted by target index.
// Complexity: O(V + E log E)
func (g *Digraph[W]) String() string {
	var sb strings.Builder
	for u, nbrs := range g.adj {
		fmt.Fprintf(&sb, "%d:", u)
		targets := make([]int, 0, len(nbrs))
		for v := range nbrs {
			targets = append(targets, v)
		}
		sort.Ints(targets)
		for _, v := range targets {
			fmt.Fprintf(&sb, " (%d, %d)[%v]", u, v, nbrs[v])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
