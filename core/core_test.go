// SPDX-License-Identifier: MIT
// Package: chromatic/core

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a")) // idempotent
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("c"))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_Policies(t *testing.T) {
	simple := core.NewGraph()
	_, err := simple.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = simple.AddEdge("", "a")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	id, err := simple.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = simple.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "mirror counts as parallel")
	assert.True(t, simple.HasEdge("b", "a"))
	assert.False(t, simple.HasEdge("a", "c"))
	assert.False(t, simple.Looped())
	assert.False(t, simple.Multigraph())

	multi := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, uv := range [][2]string{{"a", "b"}, {"b", "a"}, {"c", "c"}} {
		_, err := multi.AddEdge(uv[0], uv[1])
		require.NoError(t, err)
	}
	assert.Equal(t, 3, multi.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c"}, multi.Vertices())
	assert.True(t, multi.HasEdge("c", "c"))
}

func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", strconv.Itoa(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, "e"+strconv.Itoa(i+1), e.ID)
		assert.Equal(t, strconv.Itoa(i), e.To)
	}
}

func TestNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("c", "a")
	_, _ = g.AddEdge("a", "a")
	_, _ = g.AddEdge("b", "a")

	nbs, err := g.Neighbors("a")
	require.NoError(t, err)
	ids := make([]string, len(nbs))
	for i, e := range nbs {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids)
	assert.True(t, nbs[2].IsLoop())
	assert.Equal(t, "c", nbs[1].Other("a"))
	assert.Equal(t, "a", nbs[2].Other("a"))

	adj, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, adj)

	_, err = g.Neighbors("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := g.AddEdge("x", "y")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, g.EdgeCount())
	assert.Equal(t, "e400", g.Edges()[399].ID)
}
