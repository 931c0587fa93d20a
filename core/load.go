// File: load.go
// Role: Construction of a Digraph from a plain-text edge list.
//
// Format: the first token is the vertex count; every following triple is
// "origin dest weight" separated by arbitrary whitespace. The weight token
// is parsed as a float and converted to W. Parsing stops silently at
// end-of-input or at the first malformed token; there is no trailing
// metadata.
package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// NewFromReader reads a vertex count followed by (origin, dest, weight)
// triples from r and builds the corresponding Digraph.
//
// A source that yields no vertex count produces an empty graph. A triple
// naming an out-of-range vertex propagates ErrVertexRange from AddEdge; a
// negative vertex count returns ErrNegativeOrder.
// Complexity: O(V + E)
func NewFromReader[W Weight](r io.Reader) (*Digraph[W], error) {
	br := bufio.NewReader(r)

	var order int
	if _, err := fmt.Fscan(br, &order); err != nil {
		// No leading count token: the edge list is empty by contract.
		return New[W](0)
	}
	g, err := New[W](order)
	if err != nil {
		return nil, err
	}

	var (
		u, v int
		w    float64
	)
	for {
		if _, err = fmt.Fscan(br, &u, &v, &w); err != nil {
			// EOF or a malformed token ends the edge list.
			break
		}
		if err = g.AddEdge(u, v, fromFloat[W](w)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NewFromFile opens path and delegates to NewFromReader.
// Returns ErrSourceUnavailable (wrapped with the underlying cause) if the
// file cannot be opened.
func NewFromFile[W Weight](path string) (*Digraph[W], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return NewFromReader[W](f)
}
