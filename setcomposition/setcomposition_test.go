// SPDX-License-Identifier: MIT
// Package: chromatic/setcomposition

package setcomposition_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/setcomposition"
)

func TestNew_SortsBlocks(t *testing.T) {
	sc, err := setcomposition.New([]int{4, 2}, []int{1}, []int{6, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, "(2,4|1|3,5,6)", sc.String())
	assert.Equal(t, 3, sc.Len())
	assert.Equal(t, 6, sc.Size())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, sc.GroundSet())
}

func TestNew_Invalid(t *testing.T) {
	_, err := setcomposition.New([]int{1}, []int{})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)

	_, err = setcomposition.New([]int{1, 2}, []int{2})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)

	_, err = setcomposition.New([]int{1, 1})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)
}

func TestParse(t *testing.T) {
	sc, err := setcomposition.Parse(" (2,4 | 1 | 3,5,6) ")
	require.NoError(t, err)
	assert.True(t, sc.Equal(setcomposition.MustNew([]int{2, 4}, []int{1}, []int{3, 5, 6})))

	empty, err := setcomposition.Parse("()")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	for _, bad := range []string{"", "1|2", "(1||2)", "(a)", "(1,1)", "(1|1)"} {
		_, err := setcomposition.Parse(bad)
		assert.Error(t, err, bad)
	}
	_, err = setcomposition.Parse("(x)")
	assert.ErrorIs(t, err, setcomposition.ErrParse)
	_, err = setcomposition.Parse("(1|1)")
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)
}

func TestFirstRestPrepend(t *testing.T) {
	sc := setcomposition.MustNew([]int{3}, []int{1, 2})

	first, err := sc.First()
	require.NoError(t, err)
	assert.Equal(t, []int{3}, first)
	assert.Equal(t, "(1,2)", sc.Rest().String())
	assert.True(t, setcomposition.Empty().Rest().IsEmpty())

	_, err = setcomposition.Empty().First()
	assert.ErrorIs(t, err, setcomposition.ErrEmptyStructure)

	longer, err := sc.Prepend([]int{5, 4})
	require.NoError(t, err)
	assert.Equal(t, "(4,5|3|1,2)", longer.String())
	assert.Equal(t, "(3|1,2)", sc.String(), "receiver unchanged")

	_, err = sc.Prepend(nil)
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)
	_, err = sc.Prepend([]int{2, 7})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)
}

func TestAccessorsReturnCopies(t *testing.T) {
	sc := setcomposition.MustNew([]int{1, 2}, []int{3})
	blocks := sc.Blocks()
	blocks[0][0] = 99
	b := sc.Block(1)
	b[0] = 99
	g := sc.GroundSet()
	g[0] = 99
	assert.Equal(t, "(1,2|3)", sc.String())

	idx, ok := sc.BlockOf(3)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = sc.BlockOf(4)
	assert.False(t, ok)
}

func TestRelabel(t *testing.T) {
	sc := setcomposition.MustNew([]int{7, 3}, []int{10})

	std, err := sc.Relabel(nil)
	require.NoError(t, err)
	assert.Equal(t, "(1,2|3)", std.String())

	moved, err := sc.Relabel(map[int]int{3: 30, 7: 1, 10: 2})
	require.NoError(t, err)
	assert.Equal(t, "(1,30|2)", moved.String())

	_, err = sc.Relabel(map[int]int{3: 1, 7: 1, 10: 2})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidRelabeling)
	_, err = sc.Relabel(map[int]int{3: 1})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidRelabeling)

	onto, err := sc.RelabelOnto([]int{5, 6, 4})
	require.NoError(t, err)
	assert.Equal(t, "(5,6|4)", onto.String())
	_, err = sc.RelabelOnto([]int{1})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidRelabeling)

	assert.Equal(t, "(8,12|15)", sc.Shift(5).String())
	hi, _ := sc.MaxLabel()
	lo, _ := sc.MinLabel()
	assert.Equal(t, 10, hi)
	assert.Equal(t, 3, lo)
	_, ok := setcomposition.Empty().MaxLabel()
	assert.False(t, ok)
}

func TestAlpha(t *testing.T) {
	sc := setcomposition.MustNew([]int{1, 2}, []int{3})
	assert.Equal(t, "(2,1)", sc.Alpha().String())
	assert.True(t, setcomposition.Empty().Alpha().IsEmpty())
}

func TestCompare(t *testing.T) {
	a := setcomposition.MustNew([]int{1}, []int{2, 3})
	b := setcomposition.MustNew([]int{1, 3}, []int{2})
	c := setcomposition.MustNew([]int{1}, []int{2}, []int{3})
	assert.Equal(t, -1, setcomposition.Compare(a, b))
	assert.Equal(t, 1, setcomposition.Compare(c, a))
	assert.Equal(t, 0, setcomposition.Compare(a, setcomposition.MustNew([]int{1}, []int{3, 2})))
}

func TestGenerator_Fubini(t *testing.T) {
	g := setcomposition.NewGenerator()
	want := []int{1, 1, 3, 13, 75, 541}
	for n, count := range want {
		all := g.All(n)
		assert.Len(t, all, count, "n=%d", n)
		seen := make(map[string]struct{}, len(all))
		for _, sc := range all {
			assert.Equal(t, n, sc.Size())
			seen[sc.Key()] = struct{}{}
		}
		assert.Len(t, seen, count, "duplicates for n=%d", n)
	}
	assert.Nil(t, g.All(-1))
	assert.Equal(t, len(want), g.Len())
}

func TestGenerator_Order(t *testing.T) {
	all := setcomposition.NewGenerator().All(3)
	got := make([]string, 0, 6)
	for _, sc := range all[:6] {
		got = append(got, sc.String())
	}
	assert.Equal(t, []string{"(1,2,3)", "(2,3|1)", "(1,3|2)", "(1,2|3)", "(3|1,2)", "(3|2|1)"}, got)
	assert.Equal(t, "(1|2|3)", all[len(all)-1].String())
}

func TestGenerator_Concurrent(t *testing.T) {
	g := setcomposition.NewGenerator()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, g.All(5), 541)
		}()
	}
	wg.Wait()
}
