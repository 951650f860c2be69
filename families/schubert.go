// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// schubert.go — Schubert matroids.

package families

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromatic/internal/combin"
	"github.com/katalvlaran/chromatic/matroid"
)

const (
	methodSchubert         = "Schubert"
	methodAllSchubert      = "AllSchubert"
	methodLooplessSchubert = "LooplessSchubert"
)

// Schubert returns sh([n], A). A is a set of elements of {1,…,n} (in any
// order); its size is the rank. Labels follow the config, so element j of
// [n] carries label labelFn(j−1).
func Schubert(n int, a []int, opts ...Option) (*matroid.BasisMatroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodSchubert, n, ErrInvalidParameter)
	}
	if _, ok := positionsOf(n, a); !ok {
		return nil, fmt.Errorf("%s: A=%v not a subset of [%d]: %w", methodSchubert, a, n, ErrInvalidParameter)
	}
	bound := append([]int(nil), a...)
	sort.Ints(bound)

	return fromPredicate(methodSchubert, newConfig(opts...), n, len(bound), func(s matroid.Subset) bool {
		for i, p := range s.Positions() {
			if p+1 > bound[i] {
				return false
			}
		}
		return true
	})
}

// AllSchubert returns sh([n], A) for every A ⊆ [n], by increasing rank and
// lexicographic A. For n = 0 this is the single empty matroid.
func AllSchubert(n int, opts ...Option) ([]*matroid.BasisMatroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodAllSchubert, n, ErrInvalidParameter)
	}
	var out []*matroid.BasisMatroid
	for r := 0; r <= n; r++ {
		var err error
		combin.ForEach(n, r, func(a []int) {
			if err != nil {
				return
			}
			var m *matroid.BasisMatroid
			if m, err = Schubert(n, a, opts...); err == nil {
				out = append(out, m)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodAllSchubert, err)
		}
	}

	return out, nil
}

// LooplessSchubert returns the Schubert matroids on [n] without loops,
// those with n ∈ A: 2^(n−1) of them for n ≥ 1. For n = 0 this is the
// single empty matroid.
func LooplessSchubert(n int, opts ...Option) ([]*matroid.BasisMatroid, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodLooplessSchubert, n, ErrInvalidParameter)
	}
	if n == 0 {
		m, err := Schubert(0, nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodLooplessSchubert, err)
		}
		return []*matroid.BasisMatroid{m}, nil
	}
	var out []*matroid.BasisMatroid
	for r := 0; r < n; r++ {
		var err error
		combin.ForEach(n-1, r, func(a []int) {
			if err != nil {
				return
			}
			withTop := append(append(make([]int, 0, r+1), a...), n)
			var m *matroid.BasisMatroid
			if m, err = Schubert(n, withTop, opts...); err == nil {
				out = append(out, m)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodLooplessSchubert, err)
		}
	}

	return out, nil
}

