// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// mobius.go — the lattice of flats and its Möbius function.

package chromatic

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
)

// Flat is a flat of a matroid with its rank and μ(0̂, F).
type Flat struct {
	Set    matroid.Subset
	Rank   int
	Mobius int64
}

// MobiusFunction returns every flat F of o with μ(0̂, F), ordered by rank
// and then numerically. μ(0̂, 0̂) = 1 and μ(0̂, F) = −Σ μ(0̂, G) over the
// flats G ⊊ F.
func MobiusFunction(o matroid.Oracle, opts ...Option) ([]Flat, error) {
	cfg := newConfig(opts...)
	t, err := prepare(methodMobius, o, cfg)
	if err != nil {
		return nil, err
	}
	flats, err := mobius(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMobius, err)
	}
	cfg.logger.Debug("mobius function computed", "flats", len(flats))

	return flats, nil
}

// mobius walks the lattice of flats bottom-up.
//
// Steps:
//  1. Enumerate the flats level by level with matroid.Flats.
//  2. Read each flat's rank from the oracle; it must equal its level and
//     lie in 0..r(E), otherwise the oracle is not a matroid
//     (ErrInvalidMatroid). This catches unvalidated oracles before their
//     ranks are used as polynomial exponents.
//  3. μ(0̂, 0̂) = 1; for higher flats sum μ over the flats already emitted
//     below F and negate.
//
// Complexity: O(L²) subset tests over the L flats, plus the rank queries of
// matroid.Flats.
func mobius(o matroid.Oracle) ([]Flat, error) {
	full := matroid.FullRank(o)
	var out []Flat
	for level, flats := range matroid.Flats(o) {
		for _, f := range flats {
			rank := o.Rank(f)
			if rank != level || rank > full {
				return nil, fmt.Errorf("flat %s at level %d has rank %d, r(E) = %d: %w", f, level, rank, full, ErrInvalidMatroid)
			}
			if rank == 0 {
				out = append(out, Flat{Set: f, Rank: 0, Mobius: 1})
				continue
			}
			var sum int64
			for _, g := range out {
				if g.Rank < rank && g.Set.IsSubsetOf(f) {
					sum += g.Mobius
				}
			}
			out = append(out, Flat{Set: f, Rank: rank, Mobius: -sum})
		}
	}

	return out, nil
}
