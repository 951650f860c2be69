// SPDX-License-Identifier: MIT
// Package: chromatic/matroid
//
// basis.go — matroids given by their bases.

package matroid

import (
	"fmt"
	"sort"
)

// BasisMatroid is a matroid given by its family of bases.
type BasisMatroid struct {
	ground []int    // sorted labels
	bases  []Subset // sorted, distinct
	rank   int
}

// NewBasisMatroid builds a matroid on ground from the listed bases. Labels
// must be distinct, every basis must lie in ground, and the family must be
// non-empty, equicardinal and satisfy the exchange axiom: for bases B₁, B₂
// and x ∈ B₁∖B₂ some y ∈ B₂∖B₁ makes B₁−x+y a basis. Repeated bases are
// merged.
func NewBasisMatroid(ground []int, bases [][]int) (*BasisMatroid, error) {
	g, err := sortedGround(ground)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewBasisMatroid, err)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewBasisMatroid, ErrEmptyBasisFamily)
	}

	m := &BasisMatroid{ground: g}
	set := make(map[Subset]struct{}, len(bases))
	for i, b := range bases {
		s, err := encode(g, b)
		if err != nil {
			return nil, fmt.Errorf("%s: basis %d: %w", methodNewBasisMatroid, i, err)
		}
		if _, dup := set[s]; !dup {
			set[s] = struct{}{}
			m.bases = append(m.bases, s)
		}
	}
	sort.Slice(m.bases, func(i, j int) bool { return m.bases[i] < m.bases[j] })
	m.rank = m.bases[0].Len()

	if err := checkExchange(m.bases, set); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewBasisMatroid, err)
	}

	return m, nil
}

// MustBasisMatroid is like NewBasisMatroid but panics on error; for fixtures.
func MustBasisMatroid(ground []int, bases [][]int) *BasisMatroid {
	m, err := NewBasisMatroid(ground, bases)
	if err != nil {
		panic(err)
	}

	return m
}

// checkExchange verifies equicardinality and the basis exchange axiom.
func checkExchange(bases []Subset, set map[Subset]struct{}) error {
	r := bases[0].Len()
	for _, b := range bases {
		if b.Len() != r {
			return fmt.Errorf("bases of sizes %d and %d: %w", r, b.Len(), ErrInvalidMatroid)
		}
	}
	for _, b1 := range bases {
		for _, b2 := range bases {
			if b1 == b2 {
				continue
			}
			onlyB2 := b2 &^ b1
			for _, x := range (b1 &^ b2).Positions() {
				ok := false
				for _, y := range onlyB2.Positions() {
					if _, found := set[b1.Without(x).With(y)]; found {
						ok = true
						break
					}
				}
				if !ok {
					return fmt.Errorf("no exchange for %s and %s at %d: %w", b1, b2, x, ErrInvalidMatroid)
				}
			}
		}
	}

	return nil
}

// GroundSet returns a copy of the sorted labels.
func (m *BasisMatroid) GroundSet() []int { return append([]int(nil), m.ground...) }

// Rank returns max |B ∩ s| over the bases B.
func (m *BasisMatroid) Rank(s Subset) int {
	best := 0
	for _, b := range m.bases {
		if k := (b & s).Len(); k > best {
			best = k
			if best == m.rank {
				break
			}
		}
	}

	return best
}

// FullRank returns r(E).
func (m *BasisMatroid) FullRank() int { return m.rank }

// NumBases returns the number of bases.
func (m *BasisMatroid) NumBases() int { return len(m.bases) }

// BasisSubsets returns a copy of the bases as Subsets, sorted.
func (m *BasisMatroid) BasisSubsets() []Subset { return append([]Subset(nil), m.bases...) }

// Bases returns the bases as sorted label lists.
func (m *BasisMatroid) Bases() [][]int {
	out := make([][]int, len(m.bases))
	for i, b := range m.bases {
		out[i] = Labels(m, b)
	}

	return out
}

// Relabel returns the matroid with every label x replaced by mapping[x].
// The mapping must cover the ground set and be injective on it.
func (m *BasisMatroid) Relabel(mapping map[int]int) (*BasisMatroid, error) {
	ground := make([]int, len(m.ground))
	for i, x := range m.ground {
		y, ok := mapping[x]
		if !ok {
			return nil, fmt.Errorf("%s: label %d not mapped: %w", methodRelabel, x, ErrUnknownElement)
		}
		ground[i] = y
	}
	bases := make([][]int, len(m.bases))
	for i, b := range m.bases {
		labels := Labels(m, b)
		for j, x := range labels {
			labels[j] = mapping[x]
		}
		bases[i] = labels
	}
	out, err := NewBasisMatroid(ground, bases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelabel, err)
	}

	return out, nil
}

// Extend adds each element in turn as a free extension: the new element is
// in general position, so the new bases are the old ones together with
// B − x + e for every basis B and x ∈ B. Extending a rank-0 matroid adds
// loops.
func (m *BasisMatroid) Extend(elements ...int) (*BasisMatroid, error) {
	ground := m.GroundSet()
	bases := m.Bases()
	for _, e := range elements {
		for _, x := range ground {
			if x == e {
				return nil, fmt.Errorf("%s: label %d: %w", methodExtend, e, ErrDuplicateElement)
			}
		}
		ground = append(ground, e)
		grown := make([][]int, 0, len(bases)*(m.rank+1))
		for _, b := range bases {
			grown = append(grown, b)
			for i := range b {
				nb := make([]int, 0, len(b))
				nb = append(nb, b[:i]...)
				nb = append(nb, b[i+1:]...)
				grown = append(grown, append(nb, e))
			}
		}
		bases = grown
	}
	out, err := NewBasisMatroid(ground, bases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtend, err)
	}

	return out, nil
}

// sortedGround copies and sorts labels, rejecting duplicates and oversize sets.
func sortedGround(labels []int) ([]int, error) {
	if len(labels) > MaxGroundSet {
		return nil, fmt.Errorf("%d elements, max %d: %w", len(labels), MaxGroundSet, ErrGroundSetTooLarge)
	}
	g := append([]int(nil), labels...)
	sort.Ints(g)
	for i := 1; i < len(g); i++ {
		if g[i] == g[i-1] {
			return nil, fmt.Errorf("label %d: %w", g[i], ErrDuplicateElement)
		}
	}

	return g, nil
}

// encode maps labels onto positions of the sorted ground set.
func encode(ground, labels []int) (Subset, error) {
	var s Subset
	for _, x := range labels {
		i := sort.SearchInts(ground, x)
		if i == len(ground) || ground[i] != x {
			return 0, fmt.Errorf("label %d: %w", x, ErrUnknownElement)
		}
		if s.Has(i) {
			return 0, fmt.Errorf("label %d: %w", x, ErrDuplicateElement)
		}
		s = s.With(i)
	}

	return s, nil
}
