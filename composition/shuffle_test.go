// SPDX-License-Identifier: MIT
// Package: chromatic/composition

package composition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chromatic/composition"
)

func termMap(terms []composition.Term) map[string]int64 {
	out := make(map[string]int64, len(terms))
	for _, t := range terms {
		out[t.Composition.Key()] += t.Multiplicity
	}

	return out
}

func totalMultiplicity(terms []composition.Term) int64 {
	var s int64
	for _, t := range terms {
		s += t.Multiplicity
	}

	return s
}

func TestQuasiShuffles_Small(t *testing.T) {
	s := composition.NewShuffler()

	one := composition.MustNew(1)
	assert.Equal(t, map[string]int64{"(2)": 1, "(1,1)": 2}, termMap(s.QuasiShuffles(one, one)))

	got := s.QuasiShuffles(composition.MustNew(1, 2), composition.MustNew(3))
	assert.Equal(t, map[string]int64{
		"(1,2,3)": 1,
		"(1,3,2)": 1,
		"(3,1,2)": 1,
		"(1,5)":   1,
		"(4,2)":   1,
	}, termMap(got))

	// sorted output: (1,5) and (4,2) have two parts and come first
	assert.Equal(t, "(1,5)", got[0].Composition.Key())
}

func TestQuasiShuffles_Unit(t *testing.T) {
	a := composition.MustNew(2, 1)
	assert.Equal(t, map[string]int64{"(2,1)": 1}, termMap(composition.QuasiShuffles(a, composition.Empty())))
	assert.Equal(t, map[string]int64{"(2,1)": 1}, termMap(composition.QuasiShuffles(composition.Empty(), a)))
}

// TestQuasiShuffles_Delannoy checks Σ multiplicities = D(m,k) and the
// merge-free reduction Σ = C(m+k, m).
func TestQuasiShuffles_Delannoy(t *testing.T) {
	ones := func(k int) composition.Composition {
		parts := make([]int, k)
		for i := range parts {
			parts[i] = 1
		}
		return composition.MustNew(parts...)
	}
	tests := []struct {
		m, k          int
		delannoy, bin int64
	}{
		{1, 1, 3, 2},
		{2, 1, 5, 3},
		{2, 2, 13, 6},
		{3, 2, 25, 10},
		{3, 3, 63, 20},
	}
	s := composition.NewShuffler()
	for _, tc := range tests {
		a, b := ones(tc.m), ones(tc.k)
		assert.Equal(t, tc.delannoy, totalMultiplicity(s.QuasiShuffles(a, b)), "D(%d,%d)", tc.m, tc.k)
		assert.Equal(t, tc.bin, totalMultiplicity(s.Shuffles(a, b)), "C(%d+%d,%d)", tc.m, tc.k, tc.m)
	}
}

func TestQuasiShuffles_Commutative(t *testing.T) {
	s := composition.NewShuffler()
	for _, a := range composition.All(3) {
		for _, b := range composition.All(2) {
			assert.Equal(t, termMap(s.QuasiShuffles(a, b)), termMap(s.QuasiShuffles(b, a)), "%s * %s", a, b)
		}
	}
}

func TestQuasiShuffles_ReturnsCopy(t *testing.T) {
	s := composition.NewShuffler()
	a, b := composition.MustNew(1), composition.MustNew(2)
	first := s.QuasiShuffles(a, b)
	first[0].Multiplicity = 99
	again := s.QuasiShuffles(a, b)
	assert.Equal(t, int64(1), again[0].Multiplicity)
}
