// Package spath computes and validates single-source path lengths on a
// core.Digraph.
//
// What
//
//   - LabelCorrecting(g, root): queue-driven label-correcting relaxation.
//     Every vertex starts at the Infinity sentinel, the root at zero; each
//     dequeued vertex relaxes its outgoing edges and re-enqueues any target
//     it improves.
//   - AllEdgesRelaxed(dist, g, source): validates that a candidate vector
//     is a correct shortest-path solution — dist[source] == 0, no edge
//     (u,v,w) with finite dist[u] still has dist[v] > dist[u] + w, and every
//     finite non-source distance is attained exactly by at least one
//     in-edge (an unwitnessed claim is an under-estimate no path achieves).
//     Edges leaving a vertex whose distance is still Infinity are exempt,
//     and Infinity entries need no witness.
//   - Dijkstra(g, source): true priority-based shortest paths for general
//     non-negative graphs, with predecessor indices for path recovery.
//
// LabelCorrecting is NOT a general shortest-path algorithm
//
//	It is an unprioritized label-correcting relaxation: a vertex may be
//	enqueued and re-expanded several times, and the result equals true
//	shortest distances only when the expansion order is topologically
//	consistent — trees and DAG-like inputs. On cyclic weighted graphs where
//	queue order and numeric order diverge it still converges (given
//	non-negative weights) but may do the extra passes; use Dijkstra when the
//	input is a general graph.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - LabelCorrecting: O(V + E) on trees/DAGs; worst case O(V·E) passes on
//     general graphs. Memory O(V).
//   - AllEdgesRelaxed: O(V + E) time, O(V) memory.
//   - Dijkstra: O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//
// Errors
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrRootOutOfRange  if root/source is not a valid vertex index.
//   - ErrNegativeWeight  if Dijkstra detects a negative edge weight.
//   - ErrDistanceLength  if a distance vector does not match g.Order().
package spath
