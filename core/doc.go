// Package core provides Digraph, a generic weighted directed graph whose
// vertices are dense integer indices in [0, Order).
//
// What
//
//   - Digraph[W] stores, per origin vertex, a hash map from target vertex to
//     the weight of the single edge between that ordered pair.
//   - Edge mutation: AddEdge (insert-or-replace), RemoveEdge (no-op on
//     absence or out-of-range indices).
//   - Edge queries: HasEdge, Weight, OutDegree, EdgeCount.
//   - Iteration: Neighbors and Vertices return lazy, restartable Go 1.23
//     sequences; neighbour order follows map iteration and is deliberately
//     unspecified.
//   - Loading: NewFromReader / NewFromFile parse a whitespace-separated edge
//     list (vertex count, then "origin dest weight" triples).
//   - Infinity reports the "no finite distance known" sentinel for W: the
//     type's +Inf when representable, else its maximum value.
//
// Why
//
//   - O(1)-expected edge lookup, insertion, and removal.
//   - A single value type that every algorithm package (subgraph, treecheck,
//     spath) receives read-only; the container holds no global state.
//
// Determinism
//
//	Internal neighbour order is map order. Only the String rendering sorts
//	neighbours, so textual output and goldens are stable while the storage
//	stays order-agnostic.
//
// Concurrency
//
//	Digraph carries no locks. Any number of goroutines may read one instance
//	concurrently; mutation concurrent with any other access requires
//	external synchronization.
//
// Errors
//
//   - ErrNegativeOrder     if a constructor receives a vertex count < 0.
//   - ErrVertexRange       if AddEdge or Weight name an index outside [0, Order).
//   - ErrEdgeNotFound      if Weight is asked for an absent edge.
//   - ErrSourceUnavailable if NewFromFile cannot open its path.
//
// HasEdge and RemoveEdge treat absence and out-of-range indices as a normal
// negative result, never as an error; that asymmetry is a documented
// contract, not an accident.
package core
