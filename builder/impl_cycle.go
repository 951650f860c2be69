// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_cycle.go — cycle graph C_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const minCycleVertices = 3

// Cycle returns a Constructor for C_n: edges i–(i+1) for i < n−1, then the
// closing edge (n−1)–0. Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, (i+1)%n, err)
			}
		}

		return nil
	}
}
