// Package builder provides deterministic constructors for standard Digraph
// topologies, used as fixtures by tests and benchmarks.
//
// What
//
//   - Chain(n, wf):        path 0 -> 1 -> ... -> n-1.
//   - Star(n, wf):         root 0 with an edge to every other vertex.
//   - CompleteTree(d, k, wf): complete k-ary tree with d levels, child i
//     hanging under (i-1)/k, edges parent -> child.
//
// Every constructor takes a WeightFn so callers decide how edge weights
// derive from the endpoint indices; ConstWeight covers the common flat case.
//
// Contract
//
//   - Validation errors are sentinels (ErrTooFewVertices, ErrBadArity);
//     constructors never panic.
//   - Same parameters always produce the identical graph (no hidden RNG).
package builder
