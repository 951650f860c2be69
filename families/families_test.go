// SPDX-License-Identifier: MIT
// Package: chromatic/families

package families_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/matroid"
	"github.com/katalvlaran/chromatic/setcomposition"
)

func TestUniform(t *testing.T) {
	m, err := families.Uniform(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, m.GroundSet())
	assert.Equal(t, 6, m.NumBases())
	assert.Equal(t, 2, m.FullRank())

	shifted, err := families.Uniform(3, 1, families.WithOffset(10))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, shifted.GroundSet())

	empty, err := families.Uniform(0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.GroundSet())

	for _, bad := range [][2]int{{2, 3}, {-1, 0}, {3, -1}} {
		_, err := families.Uniform(bad[0], bad[1])
		assert.ErrorIs(t, err, families.ErrInvalidParameter)
	}
}

func TestSchubert(t *testing.T) {
	m, err := families.Schubert(4, []int{4, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}, {1, 4}, {2, 4}}, m.Bases())

	// A = [r] gives the rank-r matroid with coloops 1..r and loops elsewhere.
	m, err = families.Schubert(3, []int{1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, m.Bases())

	_, err = families.Schubert(3, []int{4})
	assert.ErrorIs(t, err, families.ErrInvalidParameter)
	_, err = families.Schubert(3, []int{2, 2})
	assert.ErrorIs(t, err, families.ErrInvalidParameter)
}

func TestAllSchubert(t *testing.T) {
	all, err := families.AllSchubert(3)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	zero, err := families.AllSchubert(0)
	require.NoError(t, err)
	assert.Len(t, zero, 1)

	_, err = families.AllSchubert(-1)
	assert.ErrorIs(t, err, families.ErrInvalidParameter)
}

func TestLooplessSchubert(t *testing.T) {
	for n, want := range []int{1, 1, 2, 4, 8} {
		list, err := families.LooplessSchubert(n)
		require.NoError(t, err)
		assert.Len(t, list, want, "n=%d", n)
		for _, m := range list {
			assert.Equal(t, matroid.Subset(0), matroid.Loops(m))
		}
	}
}

func TestNested(t *testing.T) {
	m, err := families.Nested(4, 2, [][]int{{1, 2}, {1, 2, 3, 4}}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumBases())
	assert.NotContains(t, m.Bases(), []int{1, 2})

	tests := []struct {
		name  string
		n, r  int
		x     [][]int
		ranks []int
		want  error
	}{
		{"rank above n", 2, 3, [][]int{{1, 2}}, []int{3}, families.ErrInvalidParameter},
		{"no sets", 2, 1, nil, nil, families.ErrInvalidChain},
		{"empty first set", 2, 1, [][]int{{}, {1, 2}}, []int{0, 1}, families.ErrInvalidChain},
		{"length mismatch", 2, 1, [][]int{{1, 2}}, []int{0, 1}, families.ErrInvalidChain},
		{"last rank", 2, 1, [][]int{{1, 2}}, []int{2}, families.ErrInvalidChain},
		{"not a chain", 3, 2, [][]int{{1, 2}, {2, 3}, {1, 2, 3}}, []int{1, 1, 2}, families.ErrInvalidChain},
		{"last set not full", 3, 1, [][]int{{1, 2}}, []int{1}, families.ErrInvalidChain},
		{"ranks not increasing", 4, 2, [][]int{{1, 2}, {1, 2, 3, 4}}, []int{2, 2}, families.ErrInvalidChain},
		{"first level full rank", 4, 3, [][]int{{1, 2}, {1, 2, 3, 4}}, []int{2, 3}, families.ErrInvalidChain},
		{"gap shrinks", 5, 4, [][]int{{1, 2, 3}, {1, 2, 3, 4}, {1, 2, 3, 4, 5}}, []int{1, 3, 4}, families.ErrInvalidChain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := families.Nested(tc.n, tc.r, tc.x, tc.ranks)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNestedDoubleChains(t *testing.T) {
	for d, want := range map[int]int{1: 1, 2: 2, 3: 6} {
		chains, err := families.NestedDoubleChains(d, families.WithGenerator(setcomposition.NewGenerator()))
		require.NoError(t, err)
		assert.Len(t, chains, want, "d=%d", d)
	}

	chains, err := families.NestedDoubleChains(2)
	require.NoError(t, err)
	assert.Equal(t, "ne(2,1,{1,2},(1))", chains[0].String())
	assert.Equal(t, "ne(2,2,{1,2},(2))", chains[1].String())

	_, err = families.NestedDoubleChains(0)
	assert.ErrorIs(t, err, families.ErrInvalidParameter)
}

func TestLooplessNested(t *testing.T) {
	list, err := families.LooplessNested(4)
	require.NoError(t, err)
	chains, err := families.NestedDoubleChains(4)
	require.NoError(t, err)
	require.Len(t, list, len(chains))
	for i, m := range list {
		assert.Equal(t, matroid.Subset(0), matroid.Loops(m), chains[i].String())
		assert.Equal(t, chains[i].Rank, m.FullRank())
	}
}

func buildGraph(t *testing.T, gopts []core.GraphOption, cons builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons)
	require.NoError(t, err)

	return g
}

func TestGraphic_Triangle(t *testing.T) {
	m, err := families.Graphic(buildGraph(t, nil, builder.Complete(3)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, m.GroundSet())
	assert.Equal(t, 2, matroid.FullRank(m))
	assert.Len(t, matroid.Bases(m), 3)
	assert.Equal(t, []matroid.Subset{matroid.Full(3)}, matroid.Circuits(m))
	assert.NoError(t, matroid.ValidateRank(m))
}

func TestGraphic_LoopsAndParallel(t *testing.T) {
	g := buildGraph(t, []core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		builder.EdgeList([][2]int{{0, 1}, {1, 2}, {0, 1}, {5, 5}}))
	m, err := families.Graphic(g, families.WithLabelFn(func(i int) int { return 10 - i }))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 10}, m.GroundSet())

	parallel, err := matroid.SubsetOf(m, []int{10, 8})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rank(parallel))

	path, err := matroid.SubsetOf(m, []int{10, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rank(path))

	loop, err := matroid.SubsetOf(m, []int{7})
	require.NoError(t, err)
	assert.Equal(t, loop, matroid.Loops(m))
	assert.Equal(t, 2, matroid.FullRank(m))
}

func TestGraphic_Cycle(t *testing.T) {
	m, err := families.Graphic(buildGraph(t, nil, builder.Cycle(4)))
	require.NoError(t, err)
	assert.Equal(t, 3, matroid.FullRank(m))
	assert.Equal(t, []matroid.Subset{matroid.Full(4)}, matroid.Circuits(m))
}

// An isolated vertex adds to |V| and to the component count alike.
func TestGraphic_IsolatedVertex(t *testing.T) {
	g := buildGraph(t, nil, builder.Complete(3))
	require.NoError(t, g.AddVertex("x"))
	m, err := families.Graphic(g)
	require.NoError(t, err)
	assert.Equal(t, 2, matroid.FullRank(m))
	assert.NoError(t, matroid.ValidateRank(m))
}

func TestGraphic_Errors(t *testing.T) {
	_, err := families.Graphic(nil)
	assert.ErrorIs(t, err, families.ErrInvalidParameter)

	_, err = families.Graphic(buildGraph(t, nil, builder.Complete(12)))
	assert.ErrorIs(t, err, matroid.ErrGroundSetTooLarge)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { families.WithLabelFn(nil) })
	assert.Panics(t, func() { families.WithGenerator(nil) })
}
