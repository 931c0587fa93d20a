// Package digraph is a small toolkit for index-addressed weighted directed
// graphs and the verification routines that go with them.
//
// What you get:
//
//	core/      — generic Digraph[W]: adjacency storage, edge mutation and
//	             queries, lazy vertex/neighbour iteration, infinity sentinel,
//	             plain-text edge-list loading and rendering
//	subgraph/  — containment check: is H a subgraph of G (same edges, same
//	             weights)?
//	treecheck/ — BFS verification that a graph is a tree rooted at r plus
//	             isolated vertices
//	spath/     — label-correcting path lengths from a root, the relaxation
//	             invariant validator, and a heap-based Dijkstra companion
//	builder/   — deterministic fixture constructors (chains, stars, k-ary
//	             trees) for tests and benchmarks
//
// Vertices are dense integers in [0, Order); each ordered pair (u,v) holds
// at most one weight. Algorithms never mutate the graph they receive, so one
// instance may back any number of concurrent read-only calls; concurrent
// mutation requires external synchronization.
//
// Quick ASCII example:
//
//	0 --2--> 1 --3--> 2
//
//	a three-vertex chain; spath.LabelCorrecting(g, 0) yields [0 2 5].
//
//	go get github.com/voskreal/digraph
package digraph
