// Package treecheck verifies that a directed graph is a tree rooted at a
// chosen vertex, plus isolated vertices.
//
// What
//
//   - IsTreePlusIsolated(g, root) runs a breadth-first traversal from root
//     and accepts the graph only when
//     (1) no reachable vertex is ever discovered twice (no cycle, no vertex
//     with two in-edges inside the reachable part), and
//     (2) every vertex the traversal never reached has no outgoing edges.
//
// Why
//
//   - A shortest-path tree handed back by another component must be exactly
//     that: a tree over the reachable vertices, with the rest of the vertex
//     range inert. This check is the gatekeeper before path-length
//     computation on the tree is meaningful.
//
// Semantics
//
//   - A single-vertex graph with root 0 and no edges is a valid tree.
//   - A self-loop on the root fails (the root is discovered twice).
//   - Edge weights are ignored; only the shape matters.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time: O(V + E); Memory: O(V) for marks and the queue.
//
// Errors
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrRootOutOfRange  if root is not a valid vertex index.
package treecheck
