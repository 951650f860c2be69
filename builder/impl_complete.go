// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_complete.go — complete graph K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const minCompleteVertices = 1

// Complete returns a Constructor for K_n.
//
// Steps:
//  1. Validate n ≥ 1.
//  2. Add vertices 0..n-1 (isolated for n = 1).
//  3. Add edge (i, j) for every i < j, lexicographically.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodComplete, i, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
