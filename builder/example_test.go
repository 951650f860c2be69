// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// example_test.go — building a cycle.

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/builder"
)

// ExampleCycle builds C_4 and lists its edges in creation order.
func ExampleCycle() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To)
	}
	// Output:
	// e1 0 1
	// e2 1 2
	// e3 2 3
	// e4 3 0
}
