// SPDX-License-Identifier: MIT
// Package: chromatic/matroid

package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/matroid"
)

// uniform builds U(r, n) on {1..n} from its r-subsets.
func uniform(t *testing.T, r, n int) *matroid.BasisMatroid {
	t.Helper()
	ground := make([]int, n)
	for i := range ground {
		ground[i] = i + 1
	}
	var bases [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == r {
			bases = append(bases, append([]int(nil), cur...))
			return
		}
		for x := start; x <= n; x++ {
			rec(x+1, append(cur, x))
		}
	}
	rec(1, nil)
	m, err := matroid.NewBasisMatroid(ground, bases)
	require.NoError(t, err)

	return m
}

func TestNewBasisMatroid_Errors(t *testing.T) {
	tests := []struct {
		name   string
		ground []int
		bases  [][]int
		want   error
	}{
		{"no bases", []int{1}, nil, matroid.ErrEmptyBasisFamily},
		{"unknown label", []int{1, 2}, [][]int{{3}}, matroid.ErrUnknownElement},
		{"duplicate ground", []int{1, 1}, [][]int{{1}}, matroid.ErrDuplicateElement},
		{"duplicate in basis", []int{1, 2}, [][]int{{1, 1}}, matroid.ErrDuplicateElement},
		{"unequal sizes", []int{1, 2}, [][]int{{1}, {1, 2}}, matroid.ErrInvalidMatroid},
		{"no exchange", []int{1, 2, 3, 4}, [][]int{{1, 2}, {3, 4}}, matroid.ErrInvalidMatroid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matroid.NewBasisMatroid(tc.ground, tc.bases)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	big := make([]int, matroid.MaxGroundSet+1)
	for i := range big {
		big[i] = i
	}
	_, err := matroid.NewBasisMatroid(big, [][]int{{}})
	assert.ErrorIs(t, err, matroid.ErrGroundSetTooLarge)
}

func TestBasisMatroid_Rank(t *testing.T) {
	m := uniform(t, 2, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, m.GroundSet())
	assert.Equal(t, 2, m.FullRank())
	assert.Equal(t, 6, m.NumBases())

	s, err := matroid.SubsetOf(m, []int{1, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rank(s))
	assert.Equal(t, 1, m.Rank(matroid.Singleton(2)))
	assert.Equal(t, 0, m.Rank(0))
	assert.Equal(t, []int{1, 3, 4}, matroid.Labels(m, s))

	_, err = matroid.SubsetOf(m, []int{9})
	assert.ErrorIs(t, err, matroid.ErrUnknownElement)
	assert.NoError(t, matroid.ValidateRank(m))
}

func TestFlatsAndClosure(t *testing.T) {
	m := uniform(t, 2, 3)
	flats := matroid.Flats(m)
	require.Len(t, flats, 3)
	assert.Equal(t, []matroid.Subset{0}, flats[0])
	assert.Len(t, flats[1], 3)
	assert.Equal(t, []matroid.Subset{matroid.Full(3)}, flats[2])

	assert.Equal(t, matroid.Full(3), matroid.Closure(m, matroid.Singleton(0).With(1)))
	assert.True(t, matroid.IsFlat(m, matroid.Singleton(2)))
	assert.False(t, matroid.IsFlat(m, matroid.Singleton(0).With(2)))
}

func TestLoopsAndParallel(t *testing.T) {
	// 1 and 2 parallel, 3 a loop.
	m := matroid.MustBasisMatroid([]int{1, 2, 3}, [][]int{{1}, {2}})
	assert.Equal(t, matroid.Singleton(2), matroid.Loops(m))
	flats := matroid.Flats(m)
	require.Len(t, flats, 2)
	assert.Equal(t, []matroid.Subset{matroid.Singleton(2)}, flats[0])
	assert.Equal(t, []matroid.Subset{matroid.Full(3)}, flats[1])

	circuits := matroid.Circuits(m)
	assert.Equal(t, []matroid.Subset{matroid.Singleton(2), matroid.Singleton(0).With(1)}, circuits)
}

func TestBasesAndCircuits(t *testing.T) {
	m := uniform(t, 2, 5)
	assert.Len(t, matroid.Bases(m), 10)
	for _, b := range matroid.Bases(m) {
		assert.True(t, matroid.IsBasis(m, b))
	}
	assert.Len(t, matroid.Circuits(uniform(t, 2, 4)), 4)
	assert.Empty(t, matroid.Circuits(uniform(t, 3, 3)))
}

func TestRelabelAndExtend(t *testing.T) {
	m := uniform(t, 1, 2)
	moved, err := m.Relabel(map[int]int{1: 10, 2: 20})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10}, {20}}, moved.Bases())

	_, err = m.Relabel(map[int]int{1: 10})
	assert.ErrorIs(t, err, matroid.ErrUnknownElement)
	_, err = m.Relabel(map[int]int{1: 5, 2: 5})
	assert.ErrorIs(t, err, matroid.ErrDuplicateElement)

	single := matroid.MustBasisMatroid([]int{1}, [][]int{{1}})
	ext, err := single.Extend(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2}, {3}}, ext.Bases())

	ext2, err := uniform(t, 2, 3).Extend(4)
	require.NoError(t, err)
	assert.Equal(t, 6, ext2.NumBases())

	_, err = single.Extend(1)
	assert.ErrorIs(t, err, matroid.ErrDuplicateElement)

	loops, err := matroid.MustBasisMatroid([]int{1}, [][]int{{}}).Extend(2)
	require.NoError(t, err)
	assert.Equal(t, matroid.Full(2), matroid.Loops(loops))
}

func TestRankMatroid(t *testing.T) {
	capped := func(s matroid.Subset) int { return min(s.Len(), 2) }
	m, err := matroid.NewRankMatroid([]int{4, 5, 6, 7}, capped)
	require.NoError(t, err)
	assert.Len(t, matroid.Bases(m), 6)

	bad := func(s matroid.Subset) int {
		if s.Len() == 1 {
			return 1
		}
		return 0
	}
	_, err = matroid.NewRankMatroid([]int{1, 2}, bad)
	assert.ErrorIs(t, err, matroid.ErrInvalidMatroid)

	notSubmodular := func(s matroid.Subset) int {
		if s == matroid.Full(3) {
			return 2
		}
		return min(s.Len(), 1)
	}
	_, err = matroid.NewRankMatroid([]int{1, 2, 3}, notSubmodular)
	assert.ErrorIs(t, err, matroid.ErrInvalidMatroid)

	nonzero := func(matroid.Subset) int { return 1 }
	_, err = matroid.NewRankMatroid([]int{1}, nonzero)
	assert.ErrorIs(t, err, matroid.ErrInvalidMatroid)
}

func TestTabulate(t *testing.T) {
	m := uniform(t, 2, 4)
	tab, err := matroid.Tabulate(m)
	require.NoError(t, err)
	for s := matroid.Subset(0); s <= matroid.Full(4); s++ {
		assert.Equal(t, m.Rank(s), tab.Rank(s))
	}
	again, err := matroid.Tabulate(tab)
	require.NoError(t, err)
	assert.Same(t, tab, again)
}

func TestTabulate_RankOutOfRange(t *testing.T) {
	for _, r := range []int{256, -1, 2} {
		o, err := matroid.FromRank([]int{1}, func(s matroid.Subset) int {
			if s == 0 {
				return 0
			}
			return r
		})
		require.NoError(t, err)
		_, err = matroid.Tabulate(o)
		assert.ErrorIs(t, err, matroid.ErrInvalidMatroid, "r=%d", r)
	}
}

func TestSpotCheckRank(t *testing.T) {
	ground := make([]int, 30)
	for i := range ground {
		ground[i] = i + 1
	}
	capped, err := matroid.FromRank(ground, func(s matroid.Subset) int { return min(s.Len(), 3) })
	require.NoError(t, err)
	assert.NoError(t, matroid.SpotCheckRank(capped))

	// r(E) collapses to 0; every E∖{e} has rank 3.
	collapsed, err := matroid.FromRank(ground, func(s matroid.Subset) int {
		if s == matroid.Full(30) {
			return 0
		}
		return min(s.Len(), 3)
	})
	require.NoError(t, err)
	assert.ErrorIs(t, matroid.SpotCheckRank(collapsed), matroid.ErrInvalidMatroid)

	shifted, err := matroid.FromRank(ground, func(s matroid.Subset) int { return min(s.Len(), 3) + 1 })
	require.NoError(t, err)
	assert.ErrorIs(t, matroid.SpotCheckRank(shifted), matroid.ErrInvalidMatroid)

	// Small oracles get the same treatment as ValidateRank on the sampled sets.
	assert.NoError(t, matroid.SpotCheckRank(uniform(t, 2, 4)))
}

func TestGreedy(t *testing.T) {
	m := uniform(t, 1, 3)

	b, unique := matroid.UniqueMaxWeightBasis(m, []int{1, 2, 3})
	assert.True(t, unique)
	assert.Equal(t, matroid.Singleton(2), b)

	b, unique = matroid.UniqueMaxWeightBasis(m, []int{1, 3, 3})
	assert.False(t, unique)
	assert.Equal(t, matroid.Singleton(1), b)

	// Parallel pair plus a coloop: only the coloop is forced.
	p := matroid.MustBasisMatroid([]int{1, 2, 3}, [][]int{{1, 3}, {2, 3}})
	_, unique = matroid.UniqueMaxWeightBasis(p, []int{1, 1, 2})
	assert.False(t, unique)
	b, unique = matroid.UniqueMaxWeightBasis(p, []int{2, 1, 1})
	assert.True(t, unique)
	assert.Equal(t, matroid.Singleton(0).With(2), b)
}

func TestSubset(t *testing.T) {
	s := matroid.Singleton(1).With(4).With(0)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 1, 4}, s.Positions())
	assert.Equal(t, "{0,1,4}", s.String())
	assert.True(t, s.Has(4))
	assert.False(t, s.Without(4).Has(4))
	assert.True(t, matroid.Singleton(1).IsSubsetOf(s))
	assert.Equal(t, 64, matroid.Full(64).Len())
	assert.Equal(t, matroid.Subset(7), matroid.Full(3))
}
