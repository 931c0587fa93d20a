package builder

import (
	"errors"
	"fmt"

	"github.com/voskreal/digraph/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrBadArity indicates a tree arity below 2.
	ErrBadArity = errors.New("builder: arity must be at least 2")
)

// Parameter minima per constructor.
const (
	minChainNodes = 1
	minStarNodes  = 1
	minTreeDepth  = 1
	minTreeArity  = 2
)

// WeightFn derives the weight of the edge u->v from its endpoints.
type WeightFn[W core.Weight] func(u, v int) W

// ConstWeight returns a WeightFn that assigns the same weight to every edge.
func ConstWeight[W core.Weight](w W) WeightFn[W] {
	return func(int, int) W { return w }
}

// Chain builds the directed path 0 -> 1 -> ... -> n-1.
// n == 1 yields a single isolated vertex; n < 1 returns ErrTooFewVertices.
func Chain[W core.Weight](n int, wf WeightFn[W]) (*core.Digraph[W], error) {
	if n < minChainNodes {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainNodes, ErrTooFewVertices)
	}
	g, err := core.New[W](n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i-1, i, wf(i-1, i)); err != nil {
			return nil, fmt.Errorf("Chain: AddEdge(%d,%d): %w", i-1, i, err)
		}
	}

	return g, nil
}

// Star builds a graph where vertex 0 points at every other vertex.
// n < 1 returns ErrTooFewVertices.
func Star[W core.Weight](n int, wf WeightFn[W]) (*core.Digraph[W], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g, err := core.New[W](n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(0, i, wf(0, i)); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
		}
	}

	return g, nil
}

// CompleteTree builds a complete arity-ary tree with depth levels, rooted at
// vertex 0. Vertex i > 0 hangs under (i-1)/arity.
// depth < 1 returns ErrTooFewVertices; arity < 2 returns ErrBadArity.
func CompleteTree[W core.Weight](depth, arity int, wf WeightFn[W]) (*core.Digraph[W], error) {
	if depth < minTreeDepth {
		return nil, fmt.Errorf("CompleteTree: depth=%d < min=%d: %w", depth, minTreeDepth, ErrTooFewVertices)
	}
	if arity < minTreeArity {
		return nil, fmt.Errorf("CompleteTree: arity=%d: %w", arity, ErrBadArity)
	}

	// Total vertices across depth levels: 1 + k + k^2 + ... + k^(depth-1).
	total, level := 0, 1
	for d := 0; d < depth; d++ {
		total += level
		level *= arity
	}

	g, err := core.New[W](total)
	if err != nil {
		return nil, err
	}
	for i := 1; i < total; i++ {
		parent := (i - 1) / arity
		if err = g.AddEdge(parent, i, wf(parent, i)); err != nil {
			return nil, fmt.Errorf("CompleteTree: AddEdge(%d,%d): %w", parent, i, err)
		}
	}

	return g, nil
}
