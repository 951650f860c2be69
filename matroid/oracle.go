// SPDX-License-Identifier: MIT
// Package: chromatic/matroid
//
// oracle.go — the rank oracle and what is derived from it: closure, flats,
// bases and circuits.

package matroid

import (
	"fmt"
	"sort"
)

// Oracle is a matroid given by its ground set and rank function.
//
// GroundSet returns the labels in increasing order; position i of a Subset
// refers to GroundSet()[i]. Rank must satisfy the rank axioms; see
// ValidateRank.
type Oracle interface {
	GroundSet() []int
	Rank(s Subset) int
}

// Size returns |E|.
func Size(o Oracle) int { return len(o.GroundSet()) }

// FullRank returns r(E).
func FullRank(o Oracle) int { return o.Rank(Full(Size(o))) }

// SubsetOf encodes labels as a Subset of o's ground set.
func SubsetOf(o Oracle, labels []int) (Subset, error) {
	ground := o.GroundSet()
	var s Subset
	for _, x := range labels {
		i := sort.SearchInts(ground, x)
		if i == len(ground) || ground[i] != x {
			return 0, fmt.Errorf("%s: label %d: %w", methodSubsetOf, x, ErrUnknownElement)
		}
		s = s.With(i)
	}

	return s, nil
}

// Labels decodes s into sorted ground-set labels.
func Labels(o Oracle, s Subset) []int {
	ground := o.GroundSet()
	pos := s.Positions()
	out := make([]int, len(pos))
	for i, p := range pos {
		out[i] = ground[p]
	}

	return out
}

// IsIndependent reports r(s) = |s|.
func IsIndependent(o Oracle, s Subset) bool { return o.Rank(s) == s.Len() }

// IsBasis reports that s is independent with r(s) = r(E).
func IsBasis(o Oracle, s Subset) bool {
	return s.Len() == FullRank(o) && IsIndependent(o, s)
}

// Closure returns cl(s) = {e : r(s ∪ e) = r(s)}.
// Complexity: n+1 rank queries.
func Closure(o Oracle, s Subset) Subset {
	n := Size(o)
	r := o.Rank(s)
	cl := s
	for e := 0; e < n; e++ {
		if !s.Has(e) && o.Rank(s.With(e)) == r {
			cl = cl.With(e)
		}
	}

	return cl
}

// IsFlat reports cl(s) = s.
func IsFlat(o Oracle, s Subset) bool { return Closure(o, s) == s }

// Loops returns cl(∅), the set of elements of rank zero.
func Loops(o Oracle) Subset { return Closure(o, 0) }

// Flats returns the flats of o grouped by rank: Flats(o)[k] lists the flats
// of rank k in increasing numeric order. Flats of rank k+1 are generated as
// closures cl(F ∪ e) of the rank-k flats F.
//
// Steps:
//  1. Level 0 is the single flat cl(∅), the loops.
//  2. For every flat F of the last level and every e ∉ F, cl(F + e) is a
//     flat covering F; collect the distinct ones.
//  3. Sort the new level numerically and repeat until no flat has a cover
//     (the last level is {E}).
//
// Every flat of rank k+1 covers some flat of rank k, so the levels are
// complete. The level index equals the rank only for a true matroid;
// callers that accept unvalidated oracles must check r(F) themselves.
// Complexity: O(L·n²) rank queries, L = number of flats.
func Flats(o Oracle) [][]Subset {
	n := Size(o)
	// 1. Bottom of the lattice.
	levels := [][]Subset{{Loops(o)}}
	for {
		// 2. Covers of the current level.
		current := levels[len(levels)-1]
		seen := make(map[Subset]struct{})
		var next []Subset
		for _, f := range current {
			for e := 0; e < n; e++ {
				if f.Has(e) {
					continue
				}
				g := Closure(o, f.With(e))
				if _, ok := seen[g]; ok {
					continue
				}
				seen[g] = struct{}{}
				next = append(next, g)
			}
		}
		if len(next) == 0 {
			return levels
		}
		// 3. Deterministic order within a level.
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		levels = append(levels, next)
	}
}

// Bases returns every basis of o in increasing numeric order.
// Complexity: C(n, r) rank queries.
func Bases(o Oracle) []Subset {
	n, r := Size(o), FullRank(o)
	var out []Subset
	ForEachOfSize(n, r, func(s Subset) {
		if o.Rank(s) == r {
			out = append(out, s)
		}
	})

	return out
}

// Circuits returns the minimal dependent sets of o, smallest first.
// A k-set C is a circuit when r(C) = k−1 and every C − e keeps rank k−1,
// that is, each C − e is independent. Circuits have at most r+1 elements.
// Complexity: O(Σ_{k≤r+1} C(n, k)·k) rank queries.
func Circuits(o Oracle) []Subset {
	n, r := Size(o), FullRank(o)
	var out []Subset
	for k := 1; k <= r+1 && k <= n; k++ {
		ForEachOfSize(n, k, func(s Subset) {
			if o.Rank(s) != k-1 {
				return
			}
			for _, e := range s.Positions() {
				if o.Rank(s.Without(e)) != k-1 {
					return
				}
			}
			out = append(out, s)
		})
	}

	return out
}
