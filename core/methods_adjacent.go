// SPDX-License-Identifier: MIT
// Package: chromatic/core
//
// methods_adjacent.go — neighborhood queries.
//
// Determinism:
//   - Neighbors() returns incident edges in creation order.
//   - NeighborIDs() returns unique IDs sorted lexicographically.

package core

import "sort"

// Neighbors returns every edge incident to id. An edge between distinct
// vertices appears once; a self-loop appears once.
//
// Steps:
//  1. Reject an empty ID (ErrEmptyVertexID) or a missing vertex
//     (ErrVertexNotFound).
//  2. Under the read lock, collect the edge IDs of every bucket in
//     adjacency[id] and resolve them through the edge catalog.
//  3. Sort by creation order.
//
// Complexity: O(d·log d), d = number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, sorted. A
// vertex with a self-loop lists itself.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		v := e.Other(id)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
