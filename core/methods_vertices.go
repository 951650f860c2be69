// SPDX-License-Identifier: MIT
// Package: chromatic/core
//
// methods_vertices.go — vertex lifecycle and queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Reject an empty ID with ErrEmptyVertexID.
//  2. Under the write lock, register the vertex and bootstrap its
//     adjacency bucket so edge code can rely on it.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; the caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
