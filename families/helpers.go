// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// helpers.go — shared construction helpers.

package families

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
)

// fromPredicate builds the matroid on n labelled positions whose bases are
// the r-subsets accepted by keep.
func fromPredicate(method string, cfg config, n, r int, keep func(matroid.Subset) bool) (*matroid.BasisMatroid, error) {
	if n > matroid.MaxGroundSet {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, matroid.ErrGroundSetTooLarge)
	}
	labels := cfg.labels(n)
	var bases [][]int
	matroid.ForEachOfSize(n, r, func(s matroid.Subset) {
		if !keep(s) {
			return
		}
		pos := s.Positions()
		b := make([]int, len(pos))
		for i, p := range pos {
			b[i] = labels[p]
		}
		bases = append(bases, b)
	})
	m, err := matroid.NewBasisMatroid(labels, bases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

// positionsOf converts 1-based element numbers to a Subset, rejecting
// anything outside 1..n and repeats.
func positionsOf(n int, elems []int) (matroid.Subset, bool) {
	var s matroid.Subset
	for _, x := range elems {
		if x < 1 || x > n || s.Has(x-1) {
			return 0, false
		}
		s = s.With(x - 1)
	}

	return s, true
}
