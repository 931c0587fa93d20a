package treecheck_test

import (
	"fmt"

	"github.com/voskreal/digraph/core"
	"github.com/voskreal/digraph/treecheck"
)

// ExampleIsTreePlusIsolated accepts a rooted tree with one spare isolated
// vertex, then rejects the same graph after a second path to vertex 1 is
// added.
func ExampleIsTreePlusIsolated() {
	g, _ := core.New[int](5)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1) // vertex 4 stays isolated

	ok, _ := treecheck.IsTreePlusIsolated(g, 0)
	fmt.Println(ok)

	g.AddEdge(2, 1, 1) // second in-edge for vertex 1
	ok, _ = treecheck.IsTreePlusIsolated(g, 0)
	fmt.Println(ok)
	// Output:
	// true
	// false
}
