// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture

package conjecture_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/conjecture"
	"github.com/katalvlaran/chromatic/setcomposition"
)

func TestLowerBound(t *testing.T) {
	two, err := conjecture.LowerBound(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1}, {1, 1}}, two.Matrix.ToRows())
	assert.Equal(t, []string{"sh(2,{2})", "sh(2,{1,2})"}, two.Rows)
	assert.Equal(t, []string{"(1,2)", "(2|1)"}, two.Cols)

	three, err := conjecture.LowerBound(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 1, 1, 1, 1},
		{0, 0, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}, three.Matrix.ToRows())
	assert.Equal(t, []string{"(3|1,2)", "(2|1,3)", "(2,3|1)", "(1,3|2)", "(3|2|1)"}, three.Cols)
	assert.Equal(t, 5, three.Rank())

	for d := 1; d <= 4; d++ {
		lb, err := conjecture.LowerBound(d)
		require.NoError(t, err)
		r, c := lb.Matrix.Shape()
		assert.Equal(t, r, c)
		assert.Equal(t, r, lb.Rank(), "full rank at d=%d", d)
	}
}

func TestConjecture(t *testing.T) {
	tbl, err := conjecture.Conjecture(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 1, 0, 1, 0, 1},
		{0, 0, 1, 0, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{0, 1, 1, 0, 1, 1},
		{0, 0, 0, 1, 1, 1},
		{0, 1, 1, 1, 0, 1},
	}, tbl.Matrix.ToRows())
	assert.Equal(t, []string{"(1,2,3)", "(1,3|2)", "(2|1,3)", "(2,3|1)", "(3|1,2)", "(3|2|1)"}, tbl.Cols)
	assert.Equal(t, []string{
		"ne(3,1,{1,2,3},(1))",
		"ne(3,2,{1,2,3},(2))",
		"ne(3,3,{1,2,3},(3))",
		"ne(3,2,{2,3}⊂{1,2,3},(1,2))",
		"ne(3,2,{1,3}⊂{1,2,3},(1,2))",
		"ne(3,2,{1,2}⊂{1,2,3},(1,2))",
	}, tbl.Rows)
	assert.Equal(t, 6, tbl.Rank())

	four, err := conjecture.Conjecture(4)
	require.NoError(t, err)
	r, c := four.Matrix.Shape()
	assert.Equal(t, 24, r)
	assert.Equal(t, 24, c)
	assert.Equal(t, 24, four.Rank())
}

func TestBig(t *testing.T) {
	tests := []struct {
		d, rows, cols, rank int
	}{
		{1, 1, 1, 1},
		{2, 2, 3, 2},
		{3, 6, 13, 6},
		{4, 24, 75, 24},
	}
	g := setcomposition.NewGenerator()
	for _, tc := range tests {
		tbl, err := conjecture.Big(tc.d, conjecture.WithGenerator(g))
		require.NoError(t, err)
		r, c := tbl.Matrix.Shape()
		assert.Equal(t, tc.rows, r, "d=%d", tc.d)
		assert.Equal(t, tc.cols, c, "d=%d", tc.d)
		assert.Equal(t, tc.rank, tbl.Rank(), "d=%d", tc.d)
		assert.Len(t, tbl.Cols, c)
	}
}

func TestAlternatingSum(t *testing.T) {
	two, err := conjecture.AlternatingSum(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 1}, {0, 0}}, two.Matrix.ToRows())
	assert.Equal(t, []string{"[1,2]", "[2,1]"}, two.Cols)

	three, err := conjecture.AlternatingSum(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 1, 0},
		{1, 0, 0, 0, 0, 1},
		{0, 1, 0, 1, 0, 0},
	}, three.Matrix.ToRows())
	assert.Equal(t, 3, three.Rank())

	four, err := conjecture.AlternatingSum(4)
	require.NoError(t, err)
	assert.Equal(t, 11, four.Rank())

	one, err := conjecture.AlternatingSum(1)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-1}}, one.Matrix.ToRows())
}

func TestBuilders_InvalidDimension(t *testing.T) {
	builders := map[string]func(int, ...conjecture.Option) (*conjecture.Table, error){
		"LowerBound":     conjecture.LowerBound,
		"Conjecture":     conjecture.Conjecture,
		"Big":            conjecture.Big,
		"AlternatingSum": conjecture.AlternatingSum,
	}
	for name, build := range builders {
		_, err := build(0)
		assert.ErrorIs(t, err, conjecture.ErrInvalidDimension, name)
	}
	_, err := conjecture.Study(0)
	assert.ErrorIs(t, err, conjecture.ErrInvalidDimension)
}

func TestStudy(t *testing.T) {
	tests := []conjecture.Dimension{
		{D: 1, Matroids: 1, SetCompositions: 1, QSymRank: 1, QSymBound: 1, NCQSymRank: 1, NCQSymBound: 1},
		{D: 2, Matroids: 2, SetCompositions: 3, QSymRank: 2, QSymBound: 2, NCQSymRank: 2, NCQSymBound: 2},
		{D: 3, Matroids: 6, SetCompositions: 13, QSymRank: 4, QSymBound: 4, NCQSymRank: 6, NCQSymBound: 6},
		{D: 4, Matroids: 24, SetCompositions: 75, QSymRank: 8, QSymBound: 8, NCQSymRank: 24, NCQSymBound: 24},
	}
	for _, want := range tests {
		got, err := conjecture.Study(want.D)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := conjecture.Conjecture(2, conjecture.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stability matrix built")
	assert.Contains(t, buf.String(), "kind=Conjecture")

	assert.Panics(t, func() { conjecture.WithLogger(nil) })
	assert.Panics(t, func() { conjecture.WithGenerator(nil) })
}
