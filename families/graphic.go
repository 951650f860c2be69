// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// graphic.go — cycle matroids of core.Graph multigraphs.

package families

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/dfs"
	"github.com/katalvlaran/chromatic/matroid"
)

const methodGraphic = "Graphic"

// Graphic returns the cycle matroid M(g). The elements are the edges of g
// in creation order, edge i labelled labelFn(i). Self-loops are matroid
// loops and parallel edges are parallel elements.
//
// Steps:
//  1. Reject a nil graph (ErrInvalidParameter) and more than
//     matroid.MaxGroundSet edges (ErrGroundSetTooLarge).
//  2. Label the edges and sort positions by label; pos maps an edge ID to
//     its Subset position.
//  3. r(S) = |V| − c(V, S), where c counts the components of the spanning
//     subgraph with edge set S, found by dfs.ComponentCount restricted to
//     the edges of S.
//
// The graph is read on every rank query, so it must not change while the
// matroid is in use. Complexity: O(V + E·log E) per rank query.
func Graphic(g *core.Graph, opts ...Option) (*matroid.RankMatroid, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodGraphic, ErrInvalidParameter)
	}
	edges := g.Edges()
	if len(edges) > matroid.MaxGroundSet {
		return nil, fmt.Errorf("%s: %d edges: %w", methodGraphic, len(edges), matroid.ErrGroundSetTooLarge)
	}
	cfg := newConfig(opts...)

	labels := cfg.labels(len(edges))
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return labels[order[a]] < labels[order[b]] })
	pos := make(map[string]int, len(edges))
	for p, i := range order {
		pos[edges[i].ID] = p
	}
	numVertices := g.VertexCount()

	rank := func(s matroid.Subset) int {
		c, err := dfs.ComponentCount(g, dfs.WithEdgeFilter(func(e *core.Edge) bool {
			return s.Has(pos[e.ID])
		}))
		if err != nil {
			// Unreachable for a non-nil graph and a background context.
			panic(fmt.Sprintf("families: %s rank: %v", methodGraphic, err))
		}
		return numVertices - c
	}
	m, err := matroid.FromRank(labels, rank)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraphic, err)
	}

	return m, nil
}
