// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_edge_list.go — explicit edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// EdgeList returns a Constructor adding one edge per pair, in order. Loops
// and repeated pairs need core.WithLoops / core.WithMultiEdges on the graph.
// Complexity: O(len(pairs)).
func EdgeList(pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, p := range pairs {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: pair %d = %v: %w", methodEdgeList, i, p, ErrInvalidEdge)
			}
			if _, err := g.AddEdge(cfg.idFn(p[0]), cfg.idFn(p[1])); err != nil {
				return fmt.Errorf("%s: pair %d = %v: %w", methodEdgeList, i, p, err)
			}
		}

		return nil
	}
}
