// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const minRandomVertices = 1

// RandomSparse returns a Constructor for G(n, p): each pair i < j is kept
// independently with probability p.
//
// Steps:
//  1. Validate n ≥ 1 and p ∈ [0, 1]; require an RNG only when 0 < p < 1.
//  2. Add vertices 0..n-1.
//  3. For i ascending, j > i ascending, keep (i, j) when p == 1, or when
//     0 < p < 1 and rng.Float64() <= p.
//
// Determinism: a fixed seed fixes the trial sequence and therefore the
// edge set and its order.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodRandomSparse, i, err)
			}
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() > p {
					continue
				}
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
