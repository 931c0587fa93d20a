// Package subgraph checks containment of one core.Digraph in another.
//
// What
//
//   - Of(h, g) reports whether h is a subgraph of g: every vertex index h
//     uses must exist in g, and every edge (u,v,w) of h must be present in g
//     with exactly the same weight.
//
// Why
//
//   - Validates that a candidate tree or path set was actually extracted
//     from a host graph, e.g. before trusting it as a shortest-path tree.
//
// Semantics
//
//   - h larger than g (Order(h) > Order(g)) is immediately not a subgraph.
//   - Edges present in g but absent from h are irrelevant.
//   - Weight comparison is exact equality on W; no tolerance.
//   - nil is treated as the empty graph, which is a subgraph of everything.
//
// Complexity (E = |edges of h|)
//
//   - Time: O(E) expected — one O(1) lookup in g per h-edge.
//   - Memory: O(1).
package subgraph
