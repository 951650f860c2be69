// SPDX-License-Identifier: MIT
// Package: chromatic/core

package core_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// ExampleGraph builds a triangle with a doubled side.
func ExampleGraph() {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")
	_, _ = g.AddEdge("A", "B")

	fmt.Println("vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To)
	}

	// Output:
	// vertices: [A B C]
	// e1 A B
	// e2 B C
	// e3 C A
	// e4 A B
}
